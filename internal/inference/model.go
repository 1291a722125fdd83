package inference

// Regressor is a loaded model returning one or more numeric outputs.
type Regressor interface {
	Predict(x Vector) ([]float64, error)
}

// Classifier is a loaded model returning class probabilities, positive
// class last.
type Classifier interface {
	PredictProba(x Vector) ([]float64, error)
}

// Scaler is a fitted, stateless transform: same shape in, same shape out.
type Scaler interface {
	Transform(x Vector) (Vector, error)
}

// CornersHandle pairs the corners regressor with its fitted scaler.
type CornersHandle struct {
	Model  Regressor
	Scaler Scaler
}

// RedCardHandle pairs one side's red-card classifier with its count
// regressor.
type RedCardHandle struct {
	Classifier Classifier
	Regressor  Regressor
}

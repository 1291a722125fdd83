package modelstore

import (
	"math"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fixture-predictor/internal/inference"
)

// linear is a multi-output linear model: one coefficient row per output.
type linear struct {
	coefficients [][]float64
	intercept    []float64
}

func (m *linear) Predict(x inference.Vector) ([]float64, error) {
	out := make([]float64, len(m.coefficients))
	for i, row := range m.coefficients {
		v, err := dot(row, x)
		if err != nil {
			return nil, err
		}
		out[i] = v + m.intercept[i]
	}
	return out, nil
}

// logistic is a binary classifier; PredictProba returns [P(neg), P(pos)].
type logistic struct {
	coefficients []float64
	intercept    float64
}

func (m *logistic) PredictProba(x inference.Vector) ([]float64, error) {
	z, err := dot(m.coefficients, x)
	if err != nil {
		return nil, err
	}
	p := 1 / (1 + math.Exp(-(z + m.intercept)))
	return []float64{1 - p, p}, nil
}

// standardScaler applies (x - mean) / scale per position.
type standardScaler struct {
	mean  []float64
	scale []float64
}

func (s *standardScaler) Transform(x inference.Vector) (inference.Vector, error) {
	if err := x.Require(len(s.mean)); err != nil {
		return nil, err
	}
	out := make(inference.Vector, len(x))
	for i, v := range x {
		scale := s.scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.mean[i]) / scale
	}
	return out, nil
}

// ensemble averages the outputs of its members position by position.
type ensemble struct {
	members []inference.Regressor
}

func (e *ensemble) Predict(x inference.Vector) ([]float64, error) {
	var sum []float64
	for i, member := range e.members {
		out, err := member.Predict(x)
		if err != nil {
			return nil, crerr.Wrapf(err, "ensemble member %d", i)
		}
		if sum == nil {
			sum = make([]float64, len(out))
		}
		if len(out) < len(sum) {
			sum = sum[:len(out)]
		}
		for j := range sum {
			sum[j] += out[j]
		}
	}

	n := float64(len(e.members))
	for j := range sum {
		sum[j] /= n
	}
	return sum, nil
}

// constant ignores its input beyond the declared feature count.
type constant struct {
	features int
	values   []float64
}

func (c *constant) Predict(x inference.Vector) ([]float64, error) {
	if c.features > 0 {
		if err := x.Require(c.features); err != nil {
			return nil, err
		}
	}
	out := make([]float64, len(c.values))
	copy(out, c.values)
	return out, nil
}

func (c *constant) PredictProba(x inference.Vector) ([]float64, error) {
	return c.Predict(x)
}

func dot(weights []float64, x inference.Vector) (float64, error) {
	if err := x.Require(len(weights)); err != nil {
		return 0, err
	}
	var sum float64
	for i, w := range weights {
		sum += w * x[i]
	}
	return sum, nil
}

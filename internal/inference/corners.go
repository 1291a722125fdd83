package inference

import (
	"fmt"

	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
)

const (
	CornersHomeShare       = 0.6
	CornersAwayShare       = 0.4
	CornersModelMin        = 2
	CornersFallbackHomeMin = 3
	CornersFallbackAwayMin = 2
	// FallbackPerturbation bounds the ± nudge applied to historical counts.
	FallbackPerturbation = 1
)

// PredictCorners splits the regressor's total between the sides, or nudges
// the historical corner counts when the model or scaler is missing.
func (b *Bank) PredictCorners(fx Fixture) prediction.Pair {
	return Dispatch(b.roles.Corners,
		func(h CornersHandle) (prediction.Pair, error) {
			return b.cornersFromModel(h, fx)
		},
		func(err error) prediction.Pair {
			b.logFallback(RoleCorners, fx, err)
			return cornersFallback(fx)
		},
	)
}

func (b *Bank) cornersFromModel(h CornersHandle, fx Fixture) (prediction.Pair, error) {
	if h.Model == nil || h.Scaler == nil {
		return prediction.Pair{}, fmt.Errorf("corners handle requires model and scaler")
	}

	features := b.assembler.Corners(fx)
	scaled, err := h.Scaler.Transform(features)
	if err != nil {
		return prediction.Pair{}, fmt.Errorf("scale corners features: %w", err)
	}
	x, err := b.assembler.CornersModel(fx, scaled)
	if err != nil {
		return prediction.Pair{}, err
	}
	if err := x.Require(CornersModelFeatureLen); err != nil {
		return prediction.Pair{}, err
	}

	out, err := h.Model.Predict(x)
	if err != nil {
		return prediction.Pair{}, fmt.Errorf("predict corners: %w", err)
	}
	total, err := firstFinite(out)
	if err != nil {
		return prediction.Pair{}, fmt.Errorf("predict corners: %w", err)
	}

	return prediction.Pair{
		Home: max(CornersModelMin, roundCount(total*CornersHomeShare)),
		Away: max(CornersModelMin, roundCount(total*CornersAwayShare)),
	}, nil
}

func cornersFallback(fx Fixture) prediction.Pair {
	home, away := defaultCornersHome, defaultCornersAway
	if fx.History != nil {
		home, away = fx.History.CornersHome, fx.History.CornersAway
	}

	noise := NewNoise(fx.HomeCode, fx.AwayCode, saltCornersNudge)
	return prediction.Pair{
		Home: max(CornersFallbackHomeMin, home+noise.IntRange(-FallbackPerturbation, FallbackPerturbation)),
		Away: max(CornersFallbackAwayMin, away+noise.IntRange(-FallbackPerturbation, FallbackPerturbation)),
	}
}

package inference

import (
	"fmt"

	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
)

const (
	CardShare = 0.5
	YellowMin = 1
	// RedCardThreshold is the positive-class probability above which the
	// count regressor is consulted.
	RedCardThreshold = 0.5
)

// PredictYellowCards splits the estimator's total evenly, or nudges the
// historical counts when no estimator is loaded.
func (b *Bank) PredictYellowCards(fx Fixture) prediction.Pair {
	return Dispatch(b.roles.Yellow,
		func(model Regressor) (prediction.Pair, error) {
			x := b.assembler.Yellow(fx)
			if err := x.Require(CardFeatureLen); err != nil {
				return prediction.Pair{}, err
			}
			out, err := model.Predict(x)
			if err != nil {
				return prediction.Pair{}, fmt.Errorf("predict yellow cards: %w", err)
			}
			total, err := firstFinite(out)
			if err != nil {
				return prediction.Pair{}, fmt.Errorf("predict yellow cards: %w", err)
			}
			each := max(YellowMin, truncCount(total*CardShare))
			return prediction.Pair{Home: each, Away: each}, nil
		},
		func(err error) prediction.Pair {
			b.logFallback(RoleYellow, fx, err)
			return yellowFallback(fx)
		},
	)
}

func yellowFallback(fx Fixture) prediction.Pair {
	home, away := defaultYellowHome, defaultYellowAway
	if fx.History != nil {
		home, away = fx.History.YellowHome, fx.History.YellowAway
	}

	noise := NewNoise(fx.HomeCode, fx.AwayCode, saltYellowNudge)
	return prediction.Pair{
		Home: max(YellowMin, home+noise.IntRange(-FallbackPerturbation, FallbackPerturbation)),
		Away: max(YellowMin, away+noise.IntRange(-FallbackPerturbation, FallbackPerturbation)),
	}
}

// PredictRedCards decides each side independently, each with its own
// classifier, regressor and feature ordering.
func (b *Bank) PredictRedCards(fx Fixture) prediction.Pair {
	historyHome, historyAway := 0, 0
	if fx.History != nil {
		historyHome, historyAway = fx.History.RedHome, fx.History.RedAway
	}

	return prediction.Pair{
		Home: b.predictRedSide(RoleRedHome, b.roles.RedHome, b.assembler.RedHome(fx), historyHome, fx),
		Away: b.predictRedSide(RoleRedAway, b.roles.RedAway, b.assembler.RedAway(fx), historyAway, fx),
	}
}

func (b *Bank) predictRedSide(role string, slot Slot[RedCardHandle], x Vector, historical int, fx Fixture) int {
	return Dispatch(slot,
		func(h RedCardHandle) (int, error) {
			if h.Classifier == nil || h.Regressor == nil {
				return 0, fmt.Errorf("red card handle requires classifier and regressor")
			}
			if err := x.Require(CardFeatureLen); err != nil {
				return 0, err
			}

			proba, err := h.Classifier.PredictProba(x)
			if err != nil {
				return 0, fmt.Errorf("classify red card: %w", err)
			}
			if len(proba) == 0 {
				return 0, fmt.Errorf("classify red card: %w: empty probabilities", ErrInvalidOutput)
			}
			if proba[len(proba)-1] <= RedCardThreshold {
				return 0, nil
			}

			out, err := h.Regressor.Predict(x)
			if err != nil {
				return 0, fmt.Errorf("predict red card count: %w", err)
			}
			count, err := firstFinite(out)
			if err != nil {
				return 0, fmt.Errorf("predict red card count: %w", err)
			}
			return max(0, roundCount(count)), nil
		},
		func(err error) int {
			b.logFallback(role, fx, err)
			return max(0, historical)
		},
	)
}

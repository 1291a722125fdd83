package inference

import (
	"fmt"
	"math"

	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
)

type scoreOutcome struct {
	goals prediction.Pair
	probs prediction.Probabilities
}

// PredictScore returns the predicted scoreline and the outcome triple
// derived from it. Without a score model the historical goals are used.
func (b *Bank) PredictScore(fx Fixture) (prediction.Pair, prediction.Probabilities) {
	out := Dispatch(b.roles.Score,
		func(model Regressor) (scoreOutcome, error) {
			goals, err := b.scoreFromModel(model, fx)
			if err != nil {
				return scoreOutcome{}, err
			}
			return scoreOutcome{goals: goals, probs: prediction.FromGoals(goals)}, nil
		},
		func(err error) scoreOutcome {
			b.logFallback(RoleScore, fx, err)
			goals := prediction.Pair{Home: defaultGoalsHome, Away: defaultGoalsAway}
			if fx.History != nil {
				goals = prediction.Pair{Home: fx.History.GoalsHome, Away: fx.History.GoalsAway}
			}
			return scoreOutcome{goals: goals, probs: prediction.FromGoals(goals)}
		},
	)

	return out.goals, out.probs
}

func (b *Bank) scoreFromModel(model Regressor, fx Fixture) (prediction.Pair, error) {
	x := b.assembler.Score(fx)
	if err := x.Require(ScoreFeatureLen); err != nil {
		return prediction.Pair{}, err
	}

	out, err := model.Predict(x)
	if err != nil {
		return prediction.Pair{}, fmt.Errorf("predict score: %w", err)
	}
	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return prediction.Pair{}, fmt.Errorf("predict score: %w: non-finite value %v", ErrInvalidOutput, v)
		}
	}

	if len(out) >= 2 {
		return prediction.Pair{
			Home: truncCount(out[0]),
			Away: truncCount(out[1]),
		}, nil
	}

	total, err := firstFinite(out)
	if err != nil {
		return prediction.Pair{}, fmt.Errorf("predict score: %w", err)
	}
	goals := truncCount(total)
	home := goals / 2
	return prediction.Pair{Home: home, Away: goals - home}, nil
}

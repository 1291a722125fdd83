package prediction

import (
	"fmt"
	"math"
	"time"
)

// Pair holds one integer count per side.
type Pair struct {
	Home int
	Away int
}

// Probabilities is the win/draw/loss triple from the home side's view.
type Probabilities struct {
	HomeWin float64
	Draw    float64
	AwayWin float64
}

func (p Probabilities) Sum() float64 {
	return p.HomeWin + p.Draw + p.AwayWin
}

// Normalize rescales the triple to sum to 1. It reports false when the
// triple cannot be normalised (non-finite, negative or zero total).
func (p Probabilities) Normalize() (Probabilities, bool) {
	for _, v := range []float64{p.HomeWin, p.Draw, p.AwayWin} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Probabilities{}, false
		}
	}
	total := p.Sum()
	if total <= 0 {
		return Probabilities{}, false
	}

	return Probabilities{
		HomeWin: p.HomeWin / total,
		Draw:    p.Draw / total,
		AwayWin: p.AwayWin / total,
	}, true
}

// Result is the single output unit of the prediction pipeline.
type Result struct {
	Probabilities
	Score       Pair
	Corners     Pair
	YellowCards Pair
	RedCards    Pair
}

// Record is a persisted prediction.
type Record struct {
	ID         int64
	PublicID   string
	HomeTeamID int64
	AwayTeamID int64
	Result     Result
	ModelLabel string
	CreatedAt  time.Time
}

func (r Record) Validate() error {
	if r.HomeTeamID <= 0 || r.AwayTeamID <= 0 {
		return fmt.Errorf("prediction team ids are required")
	}
	if math.Abs(r.Result.Sum()-1) > ProbabilityTolerance {
		return fmt.Errorf("prediction probabilities must sum to 1, got %.6f", r.Result.Sum())
	}
	if r.ModelLabel == "" {
		return fmt.Errorf("prediction model label is required")
	}

	return nil
}

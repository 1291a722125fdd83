package inference

import (
	"fmt"
	"math"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
)

// Fixture is the per-request input to feature assembly: the requested
// pairing plus its head-to-head context, nil when none exists.
type Fixture struct {
	HomeCode int
	AwayCode int
	HomeID   int64
	AwayID   int64
	History  *match.Context
}

// Noise salts. Each feature family draws from its own stream.
const (
	saltCornersJitter = "corners.jitter"
	saltScoreFiller   = "score.filler"
	saltCornersNudge  = "corners.fallback"
	saltYellowNudge   = "yellow.fallback"
	saltNoHistory     = "no-history"
)

const (
	scoreMeaningfulLen = 10
	scoreFillerEnd     = 50
)

// Fallback values used when the fixture has no head-to-head context.
const (
	defaultGoalsHome   = 1
	defaultGoalsAway   = 1
	defaultCornersHome = 5
	defaultCornersAway = 4
	defaultYellowHome  = 2
	defaultYellowAway  = 2
)

// Corner feature positions with no recoverable source signal are fixed.
// Positions 2-4 and 6-9 carry seeded jitter when history exists.
var defaultCornerFeatures = [CornersFeatureLen]float64{
	5.0, 4.5, 5.2, 4.8, 4.3, 2.0, 0.4, 4.1, 1.8, 0.2, 0.7, 2.1, 0.3, 0.9, 0.5, 0.3,
}

// Assembler builds the ordered vectors each model role expects.
type Assembler struct{}

// Corners returns the 16-length corners feature vector.
func (Assembler) Corners(fx Fixture) Vector {
	out := make(Vector, CornersFeatureLen)
	if fx.History == nil {
		copy(out, defaultCornerFeatures[:])
		return out
	}

	noise := NewNoise(fx.HomeCode, fx.AwayCode, saltCornersJitter)
	home := float64(fx.History.CornersHome)
	away := float64(fx.History.CornersAway)

	out[0] = (home + away) / 2
	out[1] = 4.5
	out[2] = home + noise.Normal(0.5)
	out[3] = home + noise.Normal(0.3)
	out[4] = away + noise.Normal(0.5)
	out[5] = 2.0
	out[6] = noise.Normal(0.2)
	out[7] = away + noise.Normal(0.3)
	out[8] = 1.8
	out[9] = noise.Normal(0.2)
	out[10] = 0.7
	out[11] = 2.1
	out[12] = 0.3
	out[13] = math.Abs(home - away)
	out[14] = home * 0.1
	out[15] = away * 0.1

	return out
}

// CornersModel prefixes the scaled corners vector with both internal team
// ids, producing the 18-length input of the corners regressor.
func (Assembler) CornersModel(fx Fixture, scaled Vector) (Vector, error) {
	if err := scaled.Require(CornersFeatureLen); err != nil {
		return nil, fmt.Errorf("scaled corners features: %w", err)
	}

	out := make(Vector, 0, CornersModelFeatureLen)
	out = append(out, float64(fx.HomeID), float64(fx.AwayID))
	out = append(out, scaled...)
	return out, nil
}

// Score returns the 477-length score vector. Positions 0-9 carry codes,
// goals, corners and their sums and differences; 10-49 are seeded N(0,1)
// filler; the remainder is zero.
func (Assembler) Score(fx Fixture) Vector {
	goalsHome, goalsAway := float64(defaultGoalsHome), float64(defaultGoalsAway)
	cornersHome, cornersAway := float64(defaultCornersHome), float64(defaultCornersAway)
	if fx.History != nil {
		goalsHome, goalsAway = float64(fx.History.GoalsHome), float64(fx.History.GoalsAway)
		cornersHome, cornersAway = float64(fx.History.CornersHome), float64(fx.History.CornersAway)
	}

	out := make(Vector, ScoreFeatureLen)
	out[0] = float64(fx.HomeCode)
	out[1] = float64(fx.AwayCode)
	out[2] = goalsHome
	out[3] = goalsAway
	out[4] = cornersHome
	out[5] = cornersAway
	out[6] = goalsHome + goalsAway
	out[7] = math.Abs(goalsHome - goalsAway)
	out[8] = cornersHome + cornersAway
	out[9] = math.Abs(cornersHome - cornersAway)

	noise := NewNoise(fx.HomeCode, fx.AwayCode, saltScoreFiller)
	for i := scoreMeaningfulLen; i < scoreFillerEnd; i++ {
		out[i] = noise.Normal(1)
	}

	return out
}

// Yellow returns [yellow_home, yellow_away, goals_home, goals_away].
func (Assembler) Yellow(fx Fixture) Vector {
	if fx.History == nil {
		return Vector{defaultYellowHome, defaultYellowAway, defaultGoalsHome, defaultGoalsAway}
	}
	h := fx.History
	return Vector{float64(h.YellowHome), float64(h.YellowAway), float64(h.GoalsHome), float64(h.GoalsAway)}
}

// RedHome returns [red_home, red_away, goals_home, goals_away].
func (Assembler) RedHome(fx Fixture) Vector {
	if fx.History == nil {
		return Vector{0, 0, defaultGoalsHome, defaultGoalsAway}
	}
	h := fx.History
	return Vector{float64(h.RedHome), float64(h.RedAway), float64(h.GoalsHome), float64(h.GoalsAway)}
}

// RedAway returns [red_away, red_home, goals_home, goals_away]: the away
// side's own history comes first.
func (Assembler) RedAway(fx Fixture) Vector {
	if fx.History == nil {
		return Vector{0, 0, defaultGoalsHome, defaultGoalsAway}
	}
	h := fx.History
	return Vector{float64(h.RedAway), float64(h.RedHome), float64(h.GoalsHome), float64(h.GoalsAway)}
}

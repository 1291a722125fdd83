package prediction

import "math"

const (
	// ProbabilityTolerance bounds |HomeWin+Draw+AwayWin-1| for every result.
	ProbabilityTolerance = 1e-6

	// RatioBias is added to each side's goal share before clamping.
	RatioBias = 0.1
	// RatioClampMin and RatioClampMax bound the biased goal share.
	RatioClampMin = 0.2
	RatioClampMax = 0.6
	// DrawFloor is the lowest draw weight before renormalisation.
	DrawFloor = 0.1

	// NoHistoryHomeBase and NoHistoryAwayBase seed the code-derived triple.
	NoHistoryHomeBase = 0.4
	NoHistoryAwayBase = 0.3
	NoHistoryCodeStep = 0.01
)

// GoallessProbabilities is used when the goal basis sums to zero.
var GoallessProbabilities = Probabilities{HomeWin: 0.3, Draw: 0.4, AwayWin: 0.3}

// FromGoals derives outcome probabilities from a goal pair: each side's
// share of the total is biased, clamped, a floored draw takes the rest and
// the triple is renormalised.
func FromGoals(goals Pair) Probabilities {
	home := max(goals.Home, 0)
	away := max(goals.Away, 0)
	total := home + away
	if total == 0 {
		return GoallessProbabilities
	}

	homeWin := clamp(float64(home)/float64(total)+RatioBias, RatioClampMin, RatioClampMax)
	awayWin := clamp(float64(away)/float64(total)+RatioBias, RatioClampMin, RatioClampMax)
	draw := math.Max(DrawFloor, 1-homeWin-awayWin)

	out, ok := Probabilities{HomeWin: homeWin, Draw: draw, AwayWin: awayWin}.Normalize()
	if !ok {
		return CatastrophicResult().Probabilities
	}
	return out
}

// FromCodes is the deterministic triple used when no head-to-head record
// exists: it depends only on the last digit of each external code.
func FromCodes(homeCode, awayCode int) Probabilities {
	homeWin := NoHistoryHomeBase + NoHistoryCodeStep*float64(lastDigit(homeCode))
	awayWin := NoHistoryAwayBase + NoHistoryCodeStep*float64(lastDigit(awayCode))
	draw := 1 - homeWin - awayWin

	out, ok := Probabilities{HomeWin: homeWin, Draw: draw, AwayWin: awayWin}.Normalize()
	if !ok {
		return CatastrophicResult().Probabilities
	}
	return out
}

// CatastrophicResult is returned when anything unexpected fails.
func CatastrophicResult() Result {
	return Result{
		Probabilities: Probabilities{HomeWin: 0.33, Draw: 0.33, AwayWin: 0.34},
		Score:         Pair{Home: 1, Away: 1},
		Corners:       Pair{Home: 5, Away: 4},
		YellowCards:   Pair{Home: 2, Away: 2},
		RedCards:      Pair{Home: 0, Away: 0},
	}
}

func lastDigit(code int) int {
	return ((code % 10) + 10) % 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

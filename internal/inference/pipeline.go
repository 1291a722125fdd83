package inference

import "github.com/riskibarqy/fixture-predictor/internal/domain/prediction"

// PredictWithHistoricalData runs every dimension independently against the
// fixture's head-to-head context and aggregates the outputs.
func (b *Bank) PredictWithHistoricalData(fx Fixture) prediction.Result {
	corners := b.PredictCorners(fx)
	yellow := b.PredictYellowCards(fx)
	red := b.PredictRedCards(fx)
	score, probs := b.PredictScore(fx)

	return prediction.Aggregate(probs, score, corners, yellow, red)
}

// No-history count ranges, inclusive.
const (
	noHistoryScoreMax       = 2
	noHistoryCornersHomeMin = 3
	noHistoryCornersHomeMax = 7
	noHistoryCornersAwayMin = 2
	noHistoryCornersAwayMax = 6
	noHistoryYellowMin      = 1
	noHistoryYellowMax      = 3
	noHistoryRedMax         = 1
)

// PredictWithoutHistory is used when a team is unknown or the pairing has
// never met. Probabilities depend only on the codes; counts come from
// bounded ranges drawn from the fixture's seeded stream.
func (b *Bank) PredictWithoutHistory(homeCode, awayCode int) prediction.Result {
	noise := NewNoise(homeCode, awayCode, saltNoHistory)

	score := prediction.Pair{
		Home: noise.IntRange(0, noHistoryScoreMax),
		Away: noise.IntRange(0, noHistoryScoreMax),
	}
	corners := prediction.Pair{
		Home: noise.IntRange(noHistoryCornersHomeMin, noHistoryCornersHomeMax),
		Away: noise.IntRange(noHistoryCornersAwayMin, noHistoryCornersAwayMax),
	}
	yellow := prediction.Pair{
		Home: noise.IntRange(noHistoryYellowMin, noHistoryYellowMax),
		Away: noise.IntRange(noHistoryYellowMin, noHistoryYellowMax),
	}
	red := prediction.Pair{
		Home: noise.IntRange(0, noHistoryRedMax),
		Away: noise.IntRange(0, noHistoryRedMax),
	}

	return prediction.Aggregate(prediction.FromCodes(homeCode, awayCode), score, corners, yellow, red)
}

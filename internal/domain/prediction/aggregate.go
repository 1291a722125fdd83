package prediction

// Aggregate assembles the per-dimension outputs into one result and
// enforces the probability-sum invariant.
func Aggregate(probs Probabilities, score, corners, yellow, red Pair) Result {
	normalized, ok := probs.Normalize()
	if !ok {
		normalized = CatastrophicResult().Probabilities
	}

	return Result{
		Probabilities: normalized,
		Score:         score,
		Corners:       corners,
		YellowCards:   yellow,
		RedCards:      red,
	}
}

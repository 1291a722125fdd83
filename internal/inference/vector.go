package inference

import (
	"errors"
	"fmt"
	"math"
)

// Input lengths required by each model contract.
const (
	CardFeatureLen         = 4
	CornersFeatureLen      = 16
	CornersModelFeatureLen = 18
	ScoreFeatureLen        = 477
)

var (
	ErrFeatureLength = errors.New("feature vector length mismatch")
	ErrInvalidOutput = errors.New("invalid model output")
)

// Vector is a fixed-length, positionally defined model input.
type Vector []float64

// Require checks the vector against a model contract length.
func (v Vector) Require(n int) error {
	if len(v) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrFeatureLength, len(v), n)
	}
	return nil
}

func firstFinite(out []float64) (float64, error) {
	if len(out) == 0 {
		return 0, fmt.Errorf("%w: empty output", ErrInvalidOutput)
	}
	if math.IsNaN(out[0]) || math.IsInf(out[0], 0) {
		return 0, fmt.Errorf("%w: non-finite value %v", ErrInvalidOutput, out[0])
	}
	return out[0], nil
}

func roundCount(v float64) int {
	return int(math.Round(v))
}

// truncCount drops the fractional part of a model count, floored at zero.
func truncCount(v float64) int {
	return max(0, int(math.Trunc(v)))
}

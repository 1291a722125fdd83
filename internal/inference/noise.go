package inference

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
)

// Noise is a deterministic pseudo-random source. The same fixture and salt
// always yield the same sequence, so every prediction is reproducible.
type Noise struct {
	rng *rand.Rand
}

const noiseStreamMix = 0x9e3779b97f4a7c15

func NewNoise(homeCode, awayCode int, salt string) *Noise {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strconv.Itoa(homeCode)))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(strconv.Itoa(awayCode)))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(salt))
	seed := h.Sum64()

	return &Noise{rng: rand.New(rand.NewPCG(seed, seed^noiseStreamMix))}
}

// Normal draws from N(0, sd²).
func (n *Noise) Normal(sd float64) float64 {
	return n.rng.NormFloat64() * sd
}

// IntRange draws an integer in [lo, hi].
func (n *Noise) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + n.rng.IntN(hi-lo+1)
}

package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicNoiseGrid fills a rows×cols grid with seeded noise.
func DeterministicNoiseGrid(seed int64, amplitude float64, rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, DeterministicNoise(seed, amplitude, rows*cols))
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

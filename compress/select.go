package compress

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Select returns the smallest k such that the first k ranked coefficients
// retain at least target of the accuracy measure (MeasureNorm by default).
//
// k is at least 1 (or the WithMinBasis value) and at most len(coeffs).
// A target of exactly 1 always selects every coefficient. An all-zero
// coefficient array has no defined ratio and also selects every coefficient.
func Select(coeffs []float64, ranking []int, target float64, opts ...Option) (int, error) {
	return selectBasis(coeffs, ranking, target, applyOptions(opts))
}

func selectBasis(coeffs []float64, ranking []int, target float64, cfg config) (int, error) {
	n := len(coeffs)
	if n == 0 {
		return 0, ErrShape
	}
	if err := checkRanking(ranking, n); err != nil {
		return 0, err
	}
	if err := checkTarget(target); err != nil {
		return 0, err
	}
	if target >= 1 {
		return n, nil
	}

	sq := make([]float64, n)
	vecmath.MulBlock(sq, coeffs, coeffs)

	// Accumulate in ranking order so the full prefix reproduces total exactly.
	var total float64
	for _, idx := range ranking {
		total += sq[idx]
	}
	if total == 0 {
		return n, nil
	}

	minK := min(cfg.minBasis, n)
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += sq[ranking[k-1]]
		if k >= minK && cfg.measure.ratio(cumulative, total) >= target {
			return k, nil
		}
	}
	return n, nil
}

// checkRanking verifies ranking is a permutation of [0, n).
func checkRanking(ranking []int, n int) error {
	if len(ranking) != n {
		return fmt.Errorf("%w: ranking has %d entries, want %d", ErrShape, len(ranking), n)
	}
	seen := make([]bool, n)
	for i, idx := range ranking {
		if idx < 0 || idx >= n || seen[idx] {
			return fmt.Errorf("%w: ranking[%d]=%d is not a permutation entry", ErrShape, i, idx)
		}
		seen[idx] = true
	}
	return nil
}

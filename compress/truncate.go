package compress

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dct/dct"
)

// Truncate returns a copy of coeffs in which every index outside
// ranking[:k] is exactly zero. coeffs is not modified.
func Truncate(coeffs []float64, ranking []int, k int) ([]float64, error) {
	n := len(coeffs)
	if n == 0 {
		return nil, ErrShape
	}
	if err := checkTruncation(ranking, n, k); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for _, idx := range ranking[:k] {
		out[idx] = coeffs[idx]
	}
	return out, nil
}

// Truncate2D is Truncate for coefficient grids. ranking holds column-major
// flat indices as produced by Rank2D.
func Truncate2D(coeffs mat.Matrix, ranking []int, k int) (*mat.Dense, error) {
	if coeffs == nil {
		return nil, ErrShape
	}
	rows, cols := coeffs.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrShape
	}
	if err := checkTruncation(ranking, rows*cols, k); err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, cols, nil)
	for _, idx := range ranking[:k] {
		i, j := Unflatten(idx, rows)
		out.Set(i, j, coeffs.At(i, j))
	}
	return out, nil
}

func checkTruncation(ranking []int, n, k int) error {
	if k < 0 || k > n {
		return fmt.Errorf("%w: k=%d, n=%d", ErrBasisCount, k, n)
	}
	return checkRanking(ranking, n)
}

// Reconstruct returns the inverse transform of a (sparsified) coefficient array.
func Reconstruct(coeffs []float64) ([]float64, error) {
	out, err := dct.Inverse(coeffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}
	return out, nil
}

// Reconstruct2D returns the inverse 2-D transform of a coefficient grid.
func Reconstruct2D(coeffs *mat.Dense) (*mat.Dense, error) {
	out, err := dct.Inverse2D(coeffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}
	return out, nil
}

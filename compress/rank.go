package compress

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// FlatIndex maps (row, col) of a grid with the given row count to its
// column-major flat index.
func FlatIndex(row, col, rows int) int {
	return col*rows + row
}

// Unflatten is the inverse of FlatIndex.
func Unflatten(flat, rows int) (row, col int) {
	return flat % rows, flat / rows
}

// Rank returns the indices of coeffs ordered by descending absolute value.
// Equal magnitudes keep ascending index order.
func Rank(coeffs []float64) []int {
	idx := make([]int, len(coeffs))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(math.Abs(coeffs[b]), math.Abs(coeffs[a]))
	})
	return idx
}

// Flatten returns the entries of m in column-major order.
func Flatten(m mat.Matrix) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out[FlatIndex(i, j, rows)] = m.At(i, j)
		}
	}
	return out
}

// Rank2D ranks a coefficient grid. The returned indices are column-major
// flat indices; use Unflatten to recover (row, col).
func Rank2D(coeffs mat.Matrix) []int {
	return Rank(Flatten(coeffs))
}

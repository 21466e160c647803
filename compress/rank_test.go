package compress

import (
	"slices"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dct/dct"
	"github.com/cwbudde/algo-dct/internal/grid"
	"github.com/cwbudde/algo-dct/internal/testutil"
)

func TestRankDescendingStable(t *testing.T) {
	got := Rank([]float64{1, -3, 3, 0, 2})
	want := []int{1, 2, 4, 0, 3}
	if !slices.Equal(got, want) {
		t.Fatalf("Rank = %v, want %v", got, want)
	}
}

func TestRankAllEqual(t *testing.T) {
	got := Rank([]float64{-2, 2, 2, -2})
	want := []int{0, 1, 2, 3}
	if !slices.Equal(got, want) {
		t.Fatalf("Rank = %v, want %v", got, want)
	}
}

func TestRankDoesNotMutate(t *testing.T) {
	in := []float64{0.5, -4, 2}
	orig := slices.Clone(in)
	_ = Rank(in)
	if !slices.Equal(in, orig) {
		t.Fatalf("Rank mutated input: %v", in)
	}
}

func TestFlattenColumnMajor(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	got := Flatten(m)
	want := []float64{1, 4, 2, 5, 3, 6}
	if !slices.Equal(got, want) {
		t.Fatalf("Flatten = %v, want %v", got, want)
	}
}

func TestFlatIndexRoundTrip(t *testing.T) {
	for _, rows := range []int{1, 3, 20} {
		for _, cols := range []int{1, 4, 20} {
			seen := make(map[int]bool, rows*cols)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					flat := FlatIndex(i, j, rows)
					if flat < 0 || flat >= rows*cols || seen[flat] {
						t.Fatalf("%dx%d: FlatIndex(%d,%d)=%d out of range or duplicate", rows, cols, i, j, flat)
					}
					seen[flat] = true
					r, c := Unflatten(flat, rows)
					if r != i || c != j {
						t.Fatalf("%dx%d: Unflatten(%d) = (%d,%d), want (%d,%d)", rows, cols, flat, r, c, i, j)
					}
				}
			}
		}
	}
}

// Every retained flat index must point back at the same (row, col) entry of
// the coefficient grid, so truncation keeps exactly the ranked coefficients.
func TestRank2DTruncate2DIndexConvention(t *testing.T) {
	x := grid.Linspace(0, 20, 20)
	cases := map[string]*mat.Dense{
		"consumption 20x20": grid.Consumption2D(x, x),
		"noise 5x8":         testutil.DeterministicNoiseGrid(11, 1, 5, 8),
		"noise 9x4":         testutil.DeterministicNoiseGrid(12, 1, 9, 4),
	}

	for name, signal := range cases {
		t.Run(name, func(t *testing.T) {
			coeffs, err := dct.Forward2D(signal)
			if err != nil {
				t.Fatalf("Forward2D error: %v", err)
			}
			rows, cols := coeffs.Dims()
			flat := Flatten(coeffs)
			ranking := Rank2D(coeffs)

			k, err := Select(flat, ranking, 0.99)
			if err != nil {
				t.Fatalf("Select error: %v", err)
			}
			sparse, err := Truncate2D(coeffs, ranking, k)
			if err != nil {
				t.Fatalf("Truncate2D error: %v", err)
			}

			kept := make(map[[2]int]bool, k)
			for _, idx := range ranking[:k] {
				r, c := Unflatten(idx, rows)
				if FlatIndex(r, c, rows) != idx {
					t.Fatalf("index %d does not round-trip through (%d,%d)", idx, r, c)
				}
				if flat[idx] != coeffs.At(r, c) {
					t.Fatalf("flat[%d]=%v but coeffs(%d,%d)=%v", idx, flat[idx], r, c, coeffs.At(r, c))
				}
				if sparse.At(r, c) != coeffs.At(r, c) {
					t.Fatalf("retained (%d,%d) = %v, want %v", r, c, sparse.At(r, c), coeffs.At(r, c))
				}
				kept[[2]int{r, c}] = true
			}
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					if !kept[[2]int{i, j}] && sparse.At(i, j) != 0 {
						t.Fatalf("dropped (%d,%d) = %v, want exactly 0", i, j, sparse.At(i, j))
					}
				}
			}
		})
	}
}

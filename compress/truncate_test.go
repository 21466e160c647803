package compress

import (
	"errors"
	"slices"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dct/dct"
	"github.com/cwbudde/algo-dct/internal/testutil"
)

func TestTruncateZeroPreservation(t *testing.T) {
	coeffs := testutil.DeterministicNoise(21, 1, 32)
	ranking := Rank(coeffs)

	for _, k := range []int{0, 1, 5, 31, 32} {
		got, err := Truncate(coeffs, ranking, k)
		if err != nil {
			t.Fatalf("k=%d: Truncate error: %v", k, err)
		}
		kept := make(map[int]bool, k)
		for _, idx := range ranking[:k] {
			kept[idx] = true
		}
		for i, v := range got {
			switch {
			case kept[i] && v != coeffs[i]:
				t.Fatalf("k=%d: kept index %d = %v, want %v", k, i, v, coeffs[i])
			case !kept[i] && v != 0:
				t.Fatalf("k=%d: dropped index %d = %v, want exactly 0", k, i, v)
			}
		}
	}
}

func TestTruncateIdempotent(t *testing.T) {
	coeffs := testutil.DeterministicNoise(22, 1, 50)
	ranking := Rank(coeffs)

	once, err := Truncate(coeffs, ranking, 7)
	if err != nil {
		t.Fatalf("Truncate error: %v", err)
	}
	twice, err := Truncate(once, ranking, 7)
	if err != nil {
		t.Fatalf("Truncate error: %v", err)
	}
	if !slices.Equal(once, twice) {
		t.Fatalf("truncation is not idempotent")
	}
}

func TestTruncateCopies(t *testing.T) {
	coeffs := testutil.DeterministicNoise(23, 1, 16)
	orig := slices.Clone(coeffs)
	ranking := Rank(coeffs)

	a, _ := Truncate(coeffs, ranking, 3)
	b, _ := Truncate(coeffs, ranking, 8)
	a[ranking[0]] = 1e9

	if !slices.Equal(coeffs, orig) {
		t.Fatalf("Truncate mutated its input")
	}
	if b[ranking[0]] != coeffs[ranking[0]] {
		t.Fatalf("results share storage")
	}
}

func TestTruncateFullReconstruction(t *testing.T) {
	x := testutil.DeterministicNoise(24, 10, 40)
	coeffs, err := dct.Forward(x)
	if err != nil {
		t.Fatalf("Forward error: %v", err)
	}
	ranking := Rank(coeffs)

	full, err := Truncate(coeffs, ranking, len(coeffs))
	if err != nil {
		t.Fatalf("Truncate error: %v", err)
	}
	got, err := Reconstruct(full)
	if err != nil {
		t.Fatalf("Reconstruct error: %v", err)
	}
	want, err := dct.Inverse(coeffs)
	if err != nil {
		t.Fatalf("Inverse error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
	testutil.RequireSliceNearlyEqual(t, got, x, 1e-9)
}

func TestTruncate2DFullReconstruction(t *testing.T) {
	x := testutil.DeterministicNoiseGrid(25, 10, 6, 9)
	coeffs, err := dct.Forward2D(x)
	if err != nil {
		t.Fatalf("Forward2D error: %v", err)
	}
	ranking := Rank2D(coeffs)

	full, err := Truncate2D(coeffs, ranking, 54)
	if err != nil {
		t.Fatalf("Truncate2D error: %v", err)
	}
	testutil.RequireDenseNearlyEqual(t, full, coeffs, 0)

	got, err := Reconstruct2D(full)
	if err != nil {
		t.Fatalf("Reconstruct2D error: %v", err)
	}
	testutil.RequireDenseNearlyEqual(t, got, x, 1e-9)
}

func TestTruncateErrors(t *testing.T) {
	coeffs := []float64{1, 2, 3}
	ranking := Rank(coeffs)

	for _, k := range []int{-1, 4} {
		if _, err := Truncate(coeffs, ranking, k); !errors.Is(err, ErrBasisCount) {
			t.Fatalf("k=%d: error = %v, want ErrBasisCount", k, err)
		}
	}
	if _, err := Truncate(nil, nil, 0); !errors.Is(err, ErrShape) {
		t.Fatalf("empty: error = %v, want ErrShape", err)
	}
	if _, err := Truncate(coeffs, []int{2, 1}, 1); !errors.Is(err, ErrShape) {
		t.Fatalf("short ranking: error = %v, want ErrShape", err)
	}

	grid := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if _, err := Truncate2D(grid, Rank2D(grid), 5); !errors.Is(err, ErrBasisCount) {
		t.Fatalf("Truncate2D k=5: error = %v, want ErrBasisCount", err)
	}
	if _, err := Truncate2D(&mat.Dense{}, nil, 0); !errors.Is(err, ErrShape) {
		t.Fatalf("Truncate2D empty: error = %v, want ErrShape", err)
	}
	if _, err := Truncate2D(nil, nil, 0); !errors.Is(err, ErrShape) {
		t.Fatalf("Truncate2D nil: error = %v, want ErrShape", err)
	}
}

func TestReconstructErrors(t *testing.T) {
	_, err := Reconstruct(nil)
	if !errors.Is(err, ErrShape) || !errors.Is(err, dct.ErrShape) {
		t.Fatalf("Reconstruct(nil) error = %v, want ErrShape from both packages", err)
	}
	if _, err := Reconstruct2D(&mat.Dense{}); !errors.Is(err, ErrShape) {
		t.Fatalf("Reconstruct2D(empty) error = %v, want ErrShape", err)
	}
}

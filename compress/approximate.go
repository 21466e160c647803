package compress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dct/dct"
)

// Result is a 1-D approximation at one accuracy level.
type Result struct {
	Approx   []float64 // reconstructed signal
	Coeffs   []float64 // sparsified coefficients that produced Approx
	Basis    int       // basis functions retained
	Count    int       // total coefficient count
	Target   float64
	MaxError float64 // max |Approx - signal|
	RMSError float64 // root mean square of Approx - signal
}

// Result2D is a 2-D approximation at one accuracy level.
type Result2D struct {
	Approx   *mat.Dense
	Coeffs   *mat.Dense
	Basis    int
	Count    int
	Target   float64
	MaxError float64
	RMSError float64
}

// Approximate keeps the fewest DCT basis functions of signal that reach
// target and returns the reconstruction.
func Approximate(signal []float64, target float64, opts ...Option) (Result, error) {
	res, err := Sweep(signal, []float64{target}, opts...)
	if err != nil {
		return Result{}, err
	}
	return res[0], nil
}

// Sweep approximates signal at each target. The transform and ranking are
// computed once; every level is built from its own fresh arrays, so results
// never share storage.
func Sweep(signal []float64, targets []float64, opts ...Option) ([]Result, error) {
	if len(signal) == 0 {
		return nil, ErrShape
	}
	for _, target := range targets {
		if err := checkTarget(target); err != nil {
			return nil, err
		}
	}
	cfg := applyOptions(opts)

	plan, err := dct.NewPlan(len(signal))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}
	coeffs := make([]float64, len(signal))
	if err := plan.Forward(coeffs, signal); err != nil {
		return nil, err
	}
	ranking := Rank(coeffs)

	out := make([]Result, 0, len(targets))
	for _, target := range targets {
		k, err := selectBasis(coeffs, ranking, target, cfg)
		if err != nil {
			return nil, err
		}
		sparse, err := Truncate(coeffs, ranking, k)
		if err != nil {
			return nil, err
		}
		approx := make([]float64, len(signal))
		if err := plan.Inverse(approx, sparse); err != nil {
			return nil, err
		}

		maxErr, rmsErr := errorMetrics(approx, signal)
		out = append(out, Result{
			Approx:   approx,
			Coeffs:   sparse,
			Basis:    k,
			Count:    len(coeffs),
			Target:   target,
			MaxError: maxErr,
			RMSError: rmsErr,
		})
	}
	return out, nil
}

// Approximate2D is Approximate for a 2-D grid.
func Approximate2D(grid mat.Matrix, target float64, opts ...Option) (Result2D, error) {
	res, err := Sweep2D(grid, []float64{target}, opts...)
	if err != nil {
		return Result2D{}, err
	}
	return res[0], nil
}

// Sweep2D is Sweep for a 2-D grid. Coefficients compete globally across the
// grid and are ranked in column-major flat order.
func Sweep2D(grid mat.Matrix, targets []float64, opts ...Option) ([]Result2D, error) {
	if grid == nil {
		return nil, ErrShape
	}
	rows, cols := grid.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrShape
	}
	for _, target := range targets {
		if err := checkTarget(target); err != nil {
			return nil, err
		}
	}
	cfg := applyOptions(opts)

	// Private contiguous copy: caller views with a wider stride stay untouched.
	signal := mat.DenseCopyOf(grid)

	plan, err := dct.NewPlan2D(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}
	coeffGrid := mat.NewDense(rows, cols, nil)
	if err := plan.Forward(coeffGrid, signal); err != nil {
		return nil, err
	}
	flat := Flatten(coeffGrid)
	ranking := Rank(flat)

	out := make([]Result2D, 0, len(targets))
	for _, target := range targets {
		k, err := selectBasis(flat, ranking, target, cfg)
		if err != nil {
			return nil, err
		}
		sparse, err := Truncate2D(coeffGrid, ranking, k)
		if err != nil {
			return nil, err
		}
		approx := mat.NewDense(rows, cols, nil)
		if err := plan.Inverse(approx, sparse); err != nil {
			return nil, err
		}

		maxErr, rmsErr := errorMetrics(approx.RawMatrix().Data, signal.RawMatrix().Data)
		out = append(out, Result2D{
			Approx:   approx,
			Coeffs:   sparse,
			Basis:    k,
			Count:    len(flat),
			Target:   target,
			MaxError: maxErr,
			RMSError: rmsErr,
		})
	}
	return out, nil
}

// errorMetrics returns the L∞ distance and the RMS difference of a and b.
func errorMetrics(a, b []float64) (maxErr, rmsErr float64) {
	maxErr = floats.Distance(a, b, math.Inf(1))
	rmsErr = floats.Distance(a, b, 2) / math.Sqrt(float64(len(a)))
	return maxErr, rmsErr
}

// Package grid builds the sampled demonstration functions used by the CLI
// and the tests: evenly spaced grids and smooth consumption-like surfaces
// defined on them.
package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// period of the cosine/sine ripple in grid units.
const period = 40

// Linspace returns n evenly spaced points over [lo, hi], endpoints included.
// n == 1 yields {lo}; n <= 0 yields nil.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Consumption samples x + 50*cos(2*pi*x/40) on x.
func Consumption(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v + 50*math.Cos(v*2*math.Pi/period)
	}
	return out
}

// Consumption2D samples x0*x1 - 50*sin(2*pi*x0/40) + 10*cos(2*pi*x1/40) on
// the tensor grid x0×x1. Rows follow x0, columns follow x1.
func Consumption2D(x0, x1 []float64) *mat.Dense {
	out := mat.NewDense(len(x0), len(x1), nil)
	for i, a := range x0 {
		for j, b := range x1 {
			out.Set(i, j, a*b-50*math.Sin(a*2*math.Pi/period)+10*math.Cos(b*2*math.Pi/period))
		}
	}
	return out
}

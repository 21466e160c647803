// Package dct implements the orthonormal discrete cosine transform (DCT-II
// forward, DCT-III inverse) over one or two axes.
//
// The transform is energy preserving: the sum of squared coefficients equals
// the sum of squared samples, and Inverse(Forward(x)) reproduces x to
// floating-point tolerance. Power-of-two lengths run on an FFT backend;
// all other lengths use a precomputed cosine basis matrix.
//
// Two-dimensional grids are gonum [mat.Dense] values. Forward transforms
// axis 0 (every column) first and axis 1 (every row) second; Inverse undoes
// axis 1 first and axis 0 last.
package dct

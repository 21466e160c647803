// Package compress approximates sampled functions by keeping only the
// largest orthonormal DCT coefficients.
//
// The pipeline is Transform → Rank → Select → Truncate → Reconstruct:
// coefficients are ordered by descending magnitude (ties keep ascending index
// order), Select finds the smallest prefix of that ordering whose retained
// share of the coefficient norm (or energy, see [Measure]) reaches the target
// fraction, Truncate zeroes everything else, and the inverse transform
// rebuilds the approximation.
//
// Two-dimensional coefficient grids are flattened column-major:
// flat = col*rows + row. [FlatIndex] and [Unflatten] are the only places that
// encode this convention; [Rank2D] and [Truncate2D] both go through them.
//
// Every function returns fresh arrays and never writes to caller-owned input.
package compress

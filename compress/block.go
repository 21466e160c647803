package compress

import (
	"fmt"

	"github.com/cwbudde/algo-dct/dct"
)

// Range is a half-open index range [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.End - r.Start }

// BlockResult is a blockwise approximation at one accuracy level.
type BlockResult struct {
	Approx     []float64
	Blocks     []Range
	Basis      []int // basis functions retained per block
	TotalBasis int
	Target     float64
	MaxError   float64
	RMSError   float64
}

// Partition splits [0, n) into exactly count contiguous blocks. Block lengths
// differ by at most one; when n is not divisible by count the first n%count
// blocks are one sample longer.
func Partition(n, count int) ([]Range, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid length %d", ErrShape, n)
	}
	if count <= 0 || count > n {
		return nil, fmt.Errorf("%w: block count %d for grid length %d", ErrPartition, count, n)
	}

	size, extra := n/count, n%count
	out := make([]Range, count)
	start := 0
	for i := range out {
		l := size
		if i < extra {
			l++
		}
		out[i] = Range{Start: start, End: start + l}
		start += l
	}
	return out, nil
}

// PartitionSize splits [0, n) into blocks of size samples. When n is not
// divisible by size the final block is shorter.
func PartitionSize(n, size int) ([]Range, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid length %d", ErrShape, n)
	}
	if size <= 0 || size > n {
		return nil, fmt.Errorf("%w: block size %d for grid length %d", ErrPartition, size, n)
	}

	out := make([]Range, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		out = append(out, Range{Start: start, End: min(start+size, n)})
	}
	return out, nil
}

// ApproximateBlocks splits signal into count blocks and approximates each
// block independently with the same target. Blocks never share coefficients
// or an energy budget.
func ApproximateBlocks(signal []float64, count int, target float64, opts ...Option) (BlockResult, error) {
	blocks, err := Partition(len(signal), count)
	if err != nil {
		return BlockResult{}, err
	}
	return approximateBlocks(signal, blocks, target, applyOptions(opts))
}

// ApproximateBlockSize is ApproximateBlocks with blocks of a fixed size.
func ApproximateBlockSize(signal []float64, size int, target float64, opts ...Option) (BlockResult, error) {
	blocks, err := PartitionSize(len(signal), size)
	if err != nil {
		return BlockResult{}, err
	}
	return approximateBlocks(signal, blocks, target, applyOptions(opts))
}

func approximateBlocks(signal []float64, blocks []Range, target float64, cfg config) (BlockResult, error) {
	if err := checkTarget(target); err != nil {
		return BlockResult{}, err
	}

	res := BlockResult{
		Approx: make([]float64, len(signal)),
		Blocks: blocks,
		Basis:  make([]int, len(blocks)),
		Target: target,
	}

	// At most two distinct block lengths occur.
	plans := make(map[int]*dct.Plan, 2)
	for i, b := range blocks {
		plan, ok := plans[b.Len()]
		if !ok {
			var err error
			plan, err = dct.NewPlan(b.Len())
			if err != nil {
				return BlockResult{}, fmt.Errorf("%w: %w", ErrShape, err)
			}
			plans[b.Len()] = plan
		}

		coeffs := make([]float64, b.Len())
		if err := plan.Forward(coeffs, signal[b.Start:b.End]); err != nil {
			return BlockResult{}, err
		}
		ranking := Rank(coeffs)
		k, err := selectBasis(coeffs, ranking, target, cfg)
		if err != nil {
			return BlockResult{}, err
		}
		sparse, err := Truncate(coeffs, ranking, k)
		if err != nil {
			return BlockResult{}, err
		}
		if err := plan.Inverse(res.Approx[b.Start:b.End], sparse); err != nil {
			return BlockResult{}, err
		}
		res.Basis[i] = k
		res.TotalBasis += k
	}

	res.MaxError, res.RMSError = errorMetrics(res.Approx, signal)
	return res, nil
}

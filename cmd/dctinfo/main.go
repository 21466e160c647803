// Command dctinfo prints how many DCT basis functions are needed to
// approximate a sampled function at given accuracy levels.
//
// Usage:
//
//	dctinfo [flags] [mode ...]
//
// Modes are 1d, 2d and blocks. Without arguments all modes are printed.
//
// Examples:
//
//	dctinfo
//	dctinfo -levels 0.5,0.9,0.99 1d
//	dctinfo -side 40 -levels 0.999,0.99,0.9,0.8,0.5 2d
//	dctinfo -blocks 20,50 -level 0.99 blocks
//	dctinfo -measure energy
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dct/compress"
	"github.com/cwbudde/algo-dct/internal/grid"
)

type options struct {
	points  int
	side    int
	levels  []float64
	level   float64
	blocks  []int
	measure compress.Measure
}

var modes = []string{"1d", "2d", "blocks"}

func main() {
	points := flag.Int("points", 100, "number of 1-D grid points over [0, 100]")
	side := flag.Int("side", 20, "2-D grid side length over [0, 20]")
	levels := flag.String("levels", "0.5,0.9,0.99", "comma-separated accuracy levels in (0, 1]")
	level := flag.Float64("level", 0.99, "accuracy level for the blocks mode")
	blocks := flag.String("blocks", "20,50", "comma-separated block counts for the blocks mode")
	measure := flag.String("measure", "norm", "accuracy measure: norm or energy")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dctinfo [flags] [mode ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints DCT basis-function counts needed per accuracy level.\n")
		fmt.Fprintf(os.Stderr, "Modes: %s. Without arguments all modes are printed.\n\n", strings.Join(modes, ", "))
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dctinfo -levels 0.5,0.9,0.99 1d\n")
		fmt.Fprintf(os.Stderr, "  dctinfo -side 40 2d\n")
		fmt.Fprintf(os.Stderr, "  dctinfo -blocks 20,50 blocks\n")
	}
	flag.Parse()

	opts := options{points: *points, side: *side, level: *level}
	var err error
	if opts.levels, err = parseLevels(*levels); err != nil {
		fail(err)
	}
	if opts.blocks, err = parseCounts(*blocks); err != nil {
		fail(err)
	}
	if opts.measure, err = parseMeasure(*measure); err != nil {
		fail(err)
	}

	selected := flag.Args()
	if len(selected) == 0 {
		selected = modes
	}

	if err := run(os.Stdout, selected, opts); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func run(w io.Writer, selected []string, opts options) error {
	for i, mode := range selected {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		var err error
		switch strings.ToLower(strings.TrimSpace(mode)) {
		case "1d":
			err = print1D(w, opts)
		case "2d":
			err = print2D(w, opts)
		case "blocks":
			err = printBlocks(w, opts)
		default:
			err = fmt.Errorf("unknown mode %q (want one of %s)", mode, strings.Join(modes, ", "))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func print1D(w io.Writer, opts options) error {
	signal := grid.Consumption(grid.Linspace(0, 100, opts.points))
	results, err := compress.Sweep(signal, opts.levels, compress.WithMeasure(opts.measure))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "1-D (%d points, %s)\n", opts.points, opts.measure)
	fmt.Fprintf(tw, "Level\tBasis\tOf\tMax Error\tRMS Error\n")
	fmt.Fprintf(tw, "-----\t-----\t--\t---------\t---------\n")
	for _, r := range results {
		fmt.Fprintf(tw, "%g\t%d\t%d\t%.4f\t%.4f\n", r.Target, r.Basis, r.Count, r.MaxError, r.RMSError)
	}
	return tw.Flush()
}

func print2D(w io.Writer, opts options) error {
	x := grid.Linspace(0, 20, opts.side)
	results, err := compress.Sweep2D(grid.Consumption2D(x, x), opts.levels, compress.WithMeasure(opts.measure))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "2-D (%dx%d grid, %s)\n", opts.side, opts.side, opts.measure)
	fmt.Fprintf(tw, "Level\tBasis\tOf\tMax Error\tRMS Error\n")
	fmt.Fprintf(tw, "-----\t-----\t--\t---------\t---------\n")
	for _, r := range results {
		fmt.Fprintf(tw, "%g\t%d\t%d\t%.4f\t%.4f\n", r.Target, r.Basis, r.Count, r.MaxError, r.RMSError)
	}
	return tw.Flush()
}

func printBlocks(w io.Writer, opts options) error {
	signal := grid.Consumption(grid.Linspace(0, 100, opts.points))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Blocks (%d points, level %g, %s)\n", opts.points, opts.level, opts.measure)
	fmt.Fprintf(tw, "Blocks\tBlock Size\tBasis\tMax Error\tRMS Error\n")
	fmt.Fprintf(tw, "------\t----------\t-----\t---------\t---------\n")
	for _, count := range opts.blocks {
		r, err := compress.ApproximateBlocks(signal, count, opts.level, compress.WithMeasure(opts.measure))
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.4f\t%.4f\n", count, r.Blocks[0].Len(), r.TotalBasis, r.MaxError, r.RMSError)
	}
	return tw.Flush()
}

func parseLevels(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid level %q: %w", field, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no accuracy levels given")
	}
	return out, nil
}

func parseCounts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid block count %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseMeasure(s string) (compress.Measure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "norm":
		return compress.MeasureNorm, nil
	case "energy":
		return compress.MeasureEnergy, nil
	default:
		return 0, fmt.Errorf("unknown measure %q (want norm or energy)", s)
	}
}

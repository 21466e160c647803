package dct

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Plan2D is a reusable orthonormal 2-D DCT for a fixed rows×cols grid.
//
// Forward transforms every column (axis 0), then every row (axis 1).
// Inverse runs the same stages in reverse order.
type Plan2D struct {
	rows, cols int
	colPlan    *Plan // length rows, applied down each column
	rowPlan    *Plan // length cols, applied along each row
	col        []float64
}

// NewPlan2D returns a plan for rows×cols grids.
func NewPlan2D(rows, cols int) (*Plan2D, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrShape, rows, cols)
	}

	colPlan, err := NewPlan(rows)
	if err != nil {
		return nil, err
	}

	rowPlan := colPlan
	if cols != rows {
		rowPlan, err = NewPlan(cols)
		if err != nil {
			return nil, err
		}
	}

	return &Plan2D{
		rows:    rows,
		cols:    cols,
		colPlan: colPlan,
		rowPlan: rowPlan,
		col:     make([]float64, rows),
	}, nil
}

// Dims returns the grid dimensions of the plan.
func (p *Plan2D) Dims() (rows, cols int) { return p.rows, p.cols }

// Forward computes the 2-D DCT-II of src into dst. dst may be src.
func (p *Plan2D) Forward(dst, src *mat.Dense) error {
	if err := p.prepare(dst, src); err != nil {
		return err
	}

	for j := 0; j < p.cols; j++ {
		if err := p.transformColumn(dst, j, p.colPlan.Forward); err != nil {
			return err
		}
	}
	for i := 0; i < p.rows; i++ {
		row := dst.RawRowView(i)
		if err := p.rowPlan.Forward(row, row); err != nil {
			return err
		}
	}
	return nil
}

// Inverse computes the 2-D DCT-III of src into dst. dst may be src.
func (p *Plan2D) Inverse(dst, src *mat.Dense) error {
	if err := p.prepare(dst, src); err != nil {
		return err
	}

	for i := 0; i < p.rows; i++ {
		row := dst.RawRowView(i)
		if err := p.rowPlan.Inverse(row, row); err != nil {
			return err
		}
	}
	for j := 0; j < p.cols; j++ {
		if err := p.transformColumn(dst, j, p.colPlan.Inverse); err != nil {
			return err
		}
	}
	return nil
}

// prepare validates shapes and copies src into dst so both stages run in place.
func (p *Plan2D) prepare(dst, src *mat.Dense) error {
	if dst == nil || src == nil || dst.IsEmpty() || src.IsEmpty() {
		return ErrShape
	}

	sr, sc := src.Dims()
	dr, dc := dst.Dims()
	if sr != p.rows || sc != p.cols || dr != p.rows || dc != p.cols {
		return fmt.Errorf("%w: got dst=%dx%d src=%dx%d, plan=%dx%d",
			ErrLength, dr, dc, sr, sc, p.rows, p.cols)
	}

	if dst != src {
		dst.Copy(src)
	}
	return nil
}

func (p *Plan2D) transformColumn(m *mat.Dense, j int, fn func(dst, src []float64) error) error {
	mat.Col(p.col, j, m)
	if err := fn(p.col, p.col); err != nil {
		return err
	}
	m.SetCol(j, p.col)
	return nil
}

// Forward2D returns the 2-D DCT-II of x.
func Forward2D(x *mat.Dense) (*mat.Dense, error) {
	return apply2D(x, (*Plan2D).Forward)
}

// Inverse2D returns the 2-D DCT-III of c.
func Inverse2D(c *mat.Dense) (*mat.Dense, error) {
	return apply2D(c, (*Plan2D).Inverse)
}

func apply2D(x *mat.Dense, fn func(*Plan2D, *mat.Dense, *mat.Dense) error) (*mat.Dense, error) {
	if x == nil || x.IsEmpty() {
		return nil, ErrShape
	}

	rows, cols := x.Dims()
	p, err := NewPlan2D(rows, cols)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, cols, nil)
	if err := fn(p, out, x); err != nil {
		return nil, err
	}
	return out, nil
}

// NewGrid copies a row-indexed 2-D sample array into a dense grid.
// It fails with ErrShape when rows is empty or ragged.
func NewGrid(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrShape
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Package pixels loads face images as grayscale brightness grids and
// stacks them into a contiguous matrix suitable for PCA.
package pixels

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Grid is a single grayscale image stored row-major.
type Grid struct {
	Rows int
	Cols int
	Pix  []float64 // len == Rows*Cols
}

// NewGrid allocates a zeroed grid.
func NewGrid(rows, cols int) Grid {
	return Grid{Rows: rows, Cols: cols, Pix: make([]float64, rows*cols)}
}

// At returns the brightness at row r, column c.
func (g Grid) At(r, c int) float64 {
	return g.Pix[r*g.Cols+c]
}

// Set stores the brightness at row r, column c.
func (g Grid) Set(r, c int, v float64) {
	g.Pix[r*g.Cols+c] = v
}

// Downsample keeps every stride-th row and column starting at index 0.
// An m×m grid shrinks to ceil(m/stride)×ceil(m/stride).
func Downsample(g Grid, stride int) (Grid, error) {
	if stride < 1 {
		return Grid{}, fmt.Errorf("invalid downsample stride %d", stride)
	}
	if stride == 1 {
		out := NewGrid(g.Rows, g.Cols)
		copy(out.Pix, g.Pix)
		return out, nil
	}

	rows := (g.Rows + stride - 1) / stride
	cols := (g.Cols + stride - 1) / stride
	out := NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Set(r, c, g.At(r*stride, c*stride))
		}
	}
	return out, nil
}

// Stack is an ordered set of equally shaped grids backed by one
// contiguous buffer. Image i occupies rows*cols consecutive values
// starting at i*rows*cols, in load order.
type Stack struct {
	n    int
	rows int
	cols int
	data []float64
}

// NewStack allocates a stack for n images of rows×cols pixels.
func NewStack(n, rows, cols int) *Stack {
	return &Stack{
		n:    n,
		rows: rows,
		cols: cols,
		data: make([]float64, n*rows*cols),
	}
}

// Len returns the number of images in the stack.
func (s *Stack) Len() int { return s.n }

// Shape returns the per-image grid dimensions.
func (s *Stack) Shape() (rows, cols int) { return s.rows, s.cols }

// SetGrid copies g into slot i. The grid shape must match the stack.
func (s *Stack) SetGrid(i int, g Grid) error {
	if g.Rows != s.rows || g.Cols != s.cols {
		return fmt.Errorf("grid shape %dx%d does not match stack shape %dx%d",
			g.Rows, g.Cols, s.rows, s.cols)
	}
	copy(s.data[i*s.rows*s.cols:], g.Pix)
	return nil
}

// Grid returns a view of image i sharing the stack's backing buffer.
func (s *Stack) Grid(i int) Grid {
	size := s.rows * s.cols
	return Grid{Rows: s.rows, Cols: s.cols, Pix: s.data[i*size : (i+1)*size]}
}

// Grids returns views of all images in stack order.
func (s *Stack) Grids() []Grid {
	grids := make([]Grid, s.n)
	for i := range grids {
		grids[i] = s.Grid(i)
	}
	return grids
}

// Flatten returns the stack as an n×(rows*cols) matrix, one image per
// row. The matrix shares the stack's backing buffer.
func (s *Stack) Flatten() *mat.Dense {
	return mat.NewDense(s.n, s.rows*s.cols, s.data)
}

// GridFromRow reshapes one flattened image row back into a rows×cols
// grid. The row length must equal rows*cols.
func GridFromRow(row []float64, rows, cols int) (Grid, error) {
	if len(row) != rows*cols {
		return Grid{}, fmt.Errorf("row length %d does not match shape %dx%d", len(row), rows, cols)
	}
	g := NewGrid(rows, cols)
	copy(g.Pix, row)
	return g, nil
}

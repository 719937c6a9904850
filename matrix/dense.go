// Package matrix provides the flat, row-major Dense arena used by the
// all-pairs engine. Rows and columns are addressed by node position, so the
// iteration order is fixed by the caller's index and never by map order.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadShape indicates that requested dimensions are negative.
var ErrBadShape = errors.New("matrix: invalid shape")

// ErrOutOfRange indicates that a row or column index is outside valid bounds.
var ErrOutOfRange = errors.New("matrix: index out of range")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols matrix of T stored in one flat slice.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates a rows×cols matrix with every cell set to fill.
// A 0×0 matrix is valid (empty graph).
// Complexity: O(rows*cols) time and memory.
func NewDense[T any](rows, cols int, fill T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// NewSquare is NewDense(n, n, fill).
func NewSquare[T any](n int, fill T) (*Dense[T], error) {
	return NewDense(n, n, fill)
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Get is At for callers that already validated the indices, e.g. inside the
// O(n³) loop where bounds are guaranteed by construction. Panics when out of
// range, like a slice index.
func (m *Dense[T]) Get(row, col int) T { return m.data[row*m.c+col] }

// Put is the unchecked counterpart of Set.
func (m *Dense[T]) Put(row, col int, v T) { m.data[row*m.c+col] = v }

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			fmt.Fprint(&sb, m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

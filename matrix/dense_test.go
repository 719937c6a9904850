package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/matrix"
	"github.com/katalvlaran/pathtrace/trace"
)

func TestNewDense_Fill(t *testing.T) {
	m, err := matrix.NewDense(2, 3, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, v)
}

func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewSquare(0, 0.0)
	require.NoError(t, err)
	assert.Zero(t, m.Rows())
	assert.Equal(t, "", m.String())

	_, err = matrix.NewDense(-1, 2, 0)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_Bounds(t *testing.T) {
	m, _ := matrix.NewSquare(2, 0)

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SetGetRowClone(t *testing.T) {
	m, _ := matrix.NewSquare(2, trace.Infinite)
	require.NoError(t, m.Set(0, 1, trace.Finite(3)))
	m.Put(1, 0, trace.Finite(-2))

	assert.Equal(t, trace.Finite(3), m.Get(0, 1))

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []trace.Distance{trace.Infinite, trace.Finite(3)}, row)

	c := m.Clone()
	c.Put(0, 1, trace.Finite(100))
	assert.Equal(t, trace.Finite(3), m.Get(0, 1))

	assert.Equal(t, "[∞, 3]\n[-2, ∞]\n", m.String())
}

// Package matrix_test contains unit tests for the Dense storage and views.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qmcpaths/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies shape accessors and zero initialization.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})

	m.Do(func(i, j int, v float64) bool {
		require.Zero(t, v, "(%d,%d)", i, j)
		return true
	})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() and Row().
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 7.89}, row)
	row[0] = 5 // copy, not alias
	val, _ = m.At(1, 0)
	require.Zero(t, val)
}

// TestNumericPolicy checks NaN/Inf rejection and the opt-out.
func TestNumericPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))

	v, err := loose.Columns(0, 1)
	require.NoError(t, err)
	require.NoError(t, v.Set(0, 0, math.NaN()))

	back, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, back.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestClone verifies deep copy semantics.
func TestClone(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3))

	cp := m.Clone()
	require.NoError(t, m.Set(0, 1, 4))

	v, err := cp.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	_, ok := cp.(*matrix.Dense)
	require.True(t, ok)
}

// TestView_WritesThrough verifies that a view shares storage with its base.
func TestView_WritesThrough(t *testing.T) {
	m, err := matrix.NewDense(3, 5)
	require.NoError(t, err)

	v, err := m.Columns(2, 2)
	require.NoError(t, err)
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 2, v.Cols())
	r0, c0 := v.Offset()
	require.Equal(t, [2]int{0, 2}, [2]int{r0, c0})

	require.NoError(t, v.Set(1, 1, 9))
	got, err := m.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, 9.0, got)

	require.NoError(t, m.Set(2, 2, -1))
	got, err = v.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, -1.0, got)

	require.ErrorIs(t, v.Set(0, 2, 1), matrix.ErrOutOfRange)
	_, err = v.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestView_BadShape rejects windows that do not fit.
func TestView_BadShape(t *testing.T) {
	m, err := matrix.NewDense(2, 4)
	require.NoError(t, err)

	_, err = m.View(0, 3, 2, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.Columns(-1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := m.Columns(4, 0)
	require.NoError(t, err)
	assert.Zero(t, empty.Cols())
}

// TestDo_EarlyStop checks row-major order and early exit.
func TestDo_EarlyStop(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, m.Set(i, j, float64(i*3+j)))
		}
	}

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{0, 1, 2, 3}, seen)
}

// TestString renders one bracketed line per row.
func TestString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.5))
	require.NoError(t, m.Set(1, 1, -2))

	require.Equal(t, "[1.5, 0]\n[0, -2]\n", m.String())
}

// TestNewDense_NilOptionIgnored keeps the defaults when a nil option is passed.
func TestNewDense_NilOptionIgnored(t *testing.T) {
	m, err := matrix.NewDense(1, 1, nil)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

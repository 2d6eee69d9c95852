// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyspace/matrix"
)

const epsTight = 1e-12

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

func TestColumnRange(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{1, -2}, {3, 5}, {2, 0}})
	mins, maxs, err := matrix.ColumnRange(X)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2}, mins)
	require.Equal(t, []float64{3, 5}, maxs)

	_, _, err = matrix.ColumnRange(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCenterColumns checks means and that the input is not mutated.
func TestCenterColumns(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}})
	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	require.Equal(t, []float64{5.5, 11, 16.5}, means)

	var i, j int
	for j = 0; j < 3; j++ {
		var sum float64
		for i = 0; i < 2; i++ {
			v, _ := Xc.At(i, j)
			sum += v
		}
		require.InDelta(t, 0, sum/2, epsTight, "col %d not centered", j)
	}

	v, _ := X.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestCenterColumns_ZeroSize(t *testing.T) {
	t.Parallel()

	X, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, means)
	require.Equal(t, 0, Xc.Rows())
}

// TestCovariance_KnownValues uses a centered 4×2 matrix with a hand-computed covariance.
func TestCovariance_KnownValues(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{-1, -2}, {1, 0}, {-1, 0}, {1, 2}})
	C, err := matrix.Covariance(X)
	require.NoError(t, err)

	// Σx² = 4, Σxy = 4, Σy² = 8; divisor 3.
	want := [][]float64{{4.0 / 3, 4.0 / 3}, {4.0 / 3, 8.0 / 3}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := C.At(i, j)
			require.InDelta(t, want[i][j], v, epsTight)
		}
	}
	require.True(t, matrix.IsSymmetric(C, 0))
}

// TestCovariance_DivisorFloor: one row divides by 1, an empty column set yields 0×0.
func TestCovariance_DivisorFloor(t *testing.T) {
	t.Parallel()

	one := mustRows(t, [][]float64{{2, 3}})
	C, err := matrix.Covariance(one)
	require.NoError(t, err)
	v, _ := C.At(0, 1)
	require.Equal(t, 6.0, v)

	none, err := matrix.NewDense(5, 0)
	require.NoError(t, err)
	C, err = matrix.Covariance(none)
	require.NoError(t, err)
	require.Equal(t, 0, C.Rows())

	empty, err := matrix.NewDense(0, 2)
	require.NoError(t, err)
	C, err = matrix.Covariance(empty)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := C.At(i, j)
			require.False(t, math.IsNaN(v))
			require.Equal(t, 0.0, v)
		}
	}
}

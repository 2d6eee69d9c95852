// SPDX-License-Identifier: MIT

package feature_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/geom"
)

const tol = 1e-12

// records builds respondents "1".."n" from row-major raw values over columns c0..c(d-1).
func records(rows [][]any) ([]feature.Record, []string) {
	var cols []string
	if len(rows) > 0 {
		for j := range rows[0] {
			cols = append(cols, "c"+strconv.Itoa(j))
		}
	}
	recs := make([]feature.Record, len(rows))
	for i, row := range rows {
		cells := make(map[string]feature.Cell, len(row))
		for j, v := range row {
			cells[cols[j]] = feature.ParseCell(v)
		}
		recs[i] = feature.Record{ID: strconv.Itoa(i + 1), Group: "g", Cells: cells}
	}

	return recs, cols
}

func TestBuild_ScalesAndCenters(t *testing.T) {
	t.Parallel()

	recs, cols := records([][]any{{1.0, 5.0}, {3.0, 1.0}, {5.0, "-"}})
	X := feature.Build(feature.NewTable(recs, cols), 3)
	require.NoError(t, feature.Verify(X, 1e-12))

	// c0: 1,3,5 -> -1,0,1, mean 0.
	c0, err := X.Col(0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, c0, tol)

	// c1: 5,1,fill=3 -> 1,-1,0, mean 0.
	c1, err := X.Col(1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, -1, 0}, c1, tol)
}

// TestBuild_CenteringShiftsScaledValues: skewed column, scaled values in [-1,1], then shifted.
func TestBuild_CenteringShiftsScaledValues(t *testing.T) {
	t.Parallel()

	recs, cols := records([][]any{{1.0}, {1.0}, {1.0}, {5.0}})
	X := feature.Build(feature.NewTable(recs, cols), 3)
	c0, _ := X.Col(0)
	assert.InDeltaSlice(t, []float64{-0.5, -0.5, -0.5, 1.5}, c0, tol)
	require.NoError(t, feature.Verify(X, 1e-12))
}

// TestBuild_ConstantColumn: identical raw values (and all-placeholder columns) become zero.
func TestBuild_ConstantColumn(t *testing.T) {
	t.Parallel()

	recs, cols := records([][]any{{4.0, "-", 1.0}, {4.0, nil, 2.0}, {"4", "", 3.0}})
	X := feature.Build(feature.NewTable(recs, cols), 3)
	for j := 0; j < 2; j++ {
		col, _ := X.Col(j)
		require.Equal(t, []float64{0, 0, 0}, col, "column %d", j)
	}
	col, _ := X.Col(2)
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, col, tol)
}

func TestBuild_EdgeShapes(t *testing.T) {
	t.Parallel()

	// No columns.
	recs, _ := records([][]any{{1.0}, {2.0}})
	X := feature.Build(feature.NewTable(recs, nil), 3)
	rows, cols := X.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 0, cols)

	// No rows.
	X = feature.Build(feature.NewTable(nil, []string{"a", "b"}), 3)
	rows, cols = X.Shape()
	require.Equal(t, 0, rows)
	require.Equal(t, 2, cols)

	// Single row: every column is degenerate.
	recs, names := records([][]any{{1.0, 9.0}})
	X = feature.Build(feature.NewTable(recs, names), 3)
	require.Equal(t, []float64{0, 0}, X.RawRow(0))
}

// TestBuild_Pure checks that two builds over the same table are identical.
func TestBuild_Pure(t *testing.T) {
	t.Parallel()

	recs, cols := records([][]any{{1.0, 2.0, 3.0}, {3.0, "x", 1.0}, {2.0, 2.0, 2.0}, {5.0, 4.0, "-"}})
	tab := feature.NewTable(recs, cols)
	require.Equal(t, feature.Build(tab, 3).String(), feature.Build(tab, 3).String())
	require.Equal(t, feature.TextCell("x"), tab.Cell(1, 1))
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	recs, cols := records([][]any{{1.0}, {2.0}})
	X := feature.Build(feature.NewTable(recs, cols), 0)
	require.NoError(t, X.Set(0, 0, 3))
	require.ErrorIs(t, feature.Verify(X, 1e-9), feature.ErrNotNormalized)
}

func TestTable_SubsetAndCoords(t *testing.T) {
	t.Parallel()

	recs, cols := records([][]any{{1.0}, {2.0}, {3.0}})
	recs[1].Group = "h"
	recs[2].Coords = &geom.Vec3{1, 2, 3}
	tab := feature.NewTable(recs, cols)

	sub := tab.Subset([]int{2, 1})
	require.Equal(t, []string{"3", "2"}, sub.IDs())
	require.Equal(t, []string{"g", "h"}, sub.Groups())
	c, ok := sub.Coords(0)
	require.True(t, ok)
	require.Equal(t, geom.Vec3{1, 2, 3}, c)
	_, ok = sub.Coords(1)
	require.False(t, ok)
	require.Equal(t, feature.NumberCell(2), sub.Cell(1, 0))

	// The table keeps its own copy of coordinates.
	recs[2].Coords[0] = 99
	c, _ = tab.Coords(2)
	require.Equal(t, 1.0, c[0])

	require.Equal(t, []int{1}, tab.RowsWhere(func(i int) bool { return tab.Group(i) == "h" }))
}

func TestOptionFilter(t *testing.T) {
	t.Parallel()

	recs, cols := records([][]any{{1.0, 2.0}, {2.0, "-"}, {"-", 1.0}})
	tab := feature.NewTable(recs, cols)

	require.Equal(t, []int{0, 1}, feature.OptionFilter{Column: feature.AnyColumn, Value: "2"}.Rows(tab))
	require.Equal(t, []int{1}, feature.OptionFilter{Column: "c0", Value: "2"}.Rows(tab))
	require.Empty(t, feature.OptionFilter{Column: "c1", Value: "-"}.Rows(tab))
	require.Equal(t, []int{0, 2}, feature.OptionFilter{Value: "1"}.Rows(tab))
}

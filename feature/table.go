// SPDX-License-Identifier: MIT

package feature

import "github.com/katalvlaran/surveyspace/geom"

// Record is one respondent as loaded from a data source.
// Coords is set only when the source carries precomputed coordinates.
type Record struct {
	ID     string
	Group  string
	Cells  map[string]Cell
	Coords *geom.Vec3
}

// Table is a column-resolved view over records: cells[j][i] is the answer of
// row i to column j. Tables are immutable once built.
type Table struct {
	columns []string
	ids     []string
	groups  []string
	coords  []*geom.Vec3
	cells   [][]Cell
}

// NewTable resolves columns against records once. Absent cells are Missing.
// Neither records nor columns are retained.
// Complexity: O(n·d).
func NewTable(records []Record, columns []string) *Table {
	n, d := len(records), len(columns)
	t := &Table{
		columns: append([]string(nil), columns...),
		ids:     make([]string, n),
		groups:  make([]string, n),
		coords:  make([]*geom.Vec3, n),
		cells:   make([][]Cell, d),
	}
	for j := range t.cells {
		t.cells[j] = make([]Cell, n)
	}
	for i, r := range records {
		t.ids[i] = r.ID
		t.groups[i] = r.Group
		if r.Coords != nil {
			c := *r.Coords
			t.coords[i] = &c
		}
		for j, name := range columns {
			t.cells[j][i] = r.Cells[name] // zero Cell is Missing
		}
	}

	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.ids) }

// Width returns the number of resolved columns.
func (t *Table) Width() int { return len(t.columns) }

// Columns returns a copy of the column names.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

// IDs returns a copy of the row ids in row order.
func (t *Table) IDs() []string { return append([]string(nil), t.ids...) }

// ID returns the id of row i.
func (t *Table) ID(i int) string { return t.ids[i] }

// Groups returns a copy of the row group labels in row order.
func (t *Table) Groups() []string { return append([]string(nil), t.groups...) }

// Group returns the group label of row i.
func (t *Table) Group(i int) string { return t.groups[i] }

// Coords returns the precomputed coordinates of row i, if any.
func (t *Table) Coords(i int) (geom.Vec3, bool) {
	if t.coords[i] == nil {
		return geom.Vec3{}, false
	}

	return *t.coords[i], true
}

// Column returns a copy of column j.
func (t *Table) Column(j int) []Cell { return append([]Cell(nil), t.cells[j]...) }

// Cell returns the answer of row i to column j.
func (t *Table) Cell(i, j int) Cell { return t.cells[j][i] }

// Subset returns a new table with the given rows, in the given order.
func (t *Table) Subset(rows []int) *Table {
	s := &Table{
		columns: t.columns,
		ids:     make([]string, len(rows)),
		groups:  make([]string, len(rows)),
		coords:  make([]*geom.Vec3, len(rows)),
		cells:   make([][]Cell, len(t.cells)),
	}
	for j := range s.cells {
		s.cells[j] = make([]Cell, len(rows))
	}
	for k, i := range rows {
		s.ids[k] = t.ids[i]
		s.groups[k] = t.groups[i]
		s.coords[k] = t.coords[i]
		for j := range t.cells {
			s.cells[j][k] = t.cells[j][i]
		}
	}

	return s
}

// RowsWhere returns the indices of rows for which keep returns true.
func (t *Table) RowsWhere(keep func(i int) bool) []int {
	var rows []int
	for i := range t.ids {
		if keep(i) {
			rows = append(rows, i)
		}
	}

	return rows
}

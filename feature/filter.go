// SPDX-License-Identifier: MIT

package feature

// AnyColumn makes an OptionFilter match against every column of the table.
const AnyColumn = "*"

// OptionFilter selects respondents who gave a specific answer code.
// Column is a column name or AnyColumn; Value is compared against the
// rendered cell (see Cell.String). Placeholder cells never match.
type OptionFilter struct {
	Column string `json:"column" yaml:"column"`
	Value  string `json:"value" yaml:"value"`
}

// Match reports whether row i of t satisfies f.
func (f OptionFilter) Match(t *Table, i int) bool {
	for j, name := range t.columns {
		if f.Column != "" && f.Column != AnyColumn && f.Column != name {
			continue
		}
		c := t.cells[j][i]
		if !c.IsPlaceholder() && c.String() == f.Value {
			return true
		}
	}

	return false
}

// Rows returns the indices of the rows matching f.
func (f OptionFilter) Rows(t *Table) []int {
	return t.RowsWhere(func(i int) bool { return f.Match(t, i) })
}

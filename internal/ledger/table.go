package ledger

import (
	"strings"
)

// Table is an in-memory tabular dataset with named columns. Columns are
// addressed case-insensitively and rows hold string cells as loaded from the
// source. Tables are read-only once loaded.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

func NewTable(columns []string) *Table {
	t := &Table{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		name := strings.TrimSpace(c)
		t.columns[i] = name
		key := strings.ToUpper(name)
		if _, exists := t.index[key]; !exists {
			t.index[key] = i
		}
	}
	return t
}

// AppendRow adds a row, padding or truncating to the column count.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) Columns() []string {
	return t.columns
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Cell returns the value at the given row for the named column. Unknown
// columns and out-of-range rows yield an empty string.
func (t *Table) Cell(row int, column string) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	i, ok := t.index[strings.ToUpper(strings.TrimSpace(column))]
	if !ok {
		return ""
	}
	return t.rows[row][i]
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) []string {
	i, ok := t.index[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	values := make([]string, len(t.rows))
	for r, row := range t.rows {
		values[r] = row[i]
	}
	return values
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[strings.ToUpper(strings.TrimSpace(name))]
	return ok
}

// Resolve returns the first column whose name matches one of the aliases,
// compared case-insensitively after trimming. The alias order is the
// priority order.
func (t *Table) Resolve(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		if i, ok := t.index[strings.ToUpper(strings.TrimSpace(alias))]; ok {
			return t.columns[i], true
		}
	}
	return "", false
}

// filter returns a new table sharing the column layout, keeping only the
// rows for which keep returns true.
func (t *Table) filter(keep func(row int) bool) *Table {
	out := &Table{columns: t.columns, index: t.index}
	for r := range t.rows {
		if keep(r) {
			out.rows = append(out.rows, t.rows[r])
		}
	}
	return out
}

// ExcludeItems drops every row whose trimmed value in itemColumn equals one
// of the excluded codes. An empty itemColumn leaves the table unchanged.
func ExcludeItems(t *Table, itemColumn string, codes []string) *Table {
	if itemColumn == "" || len(codes) == 0 || !t.HasColumn(itemColumn) {
		return t
	}
	excluded := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		excluded[strings.TrimSpace(c)] = struct{}{}
	}
	return t.filter(func(row int) bool {
		_, drop := excluded[strings.TrimSpace(t.Cell(row, itemColumn))]
		return !drop
	})
}

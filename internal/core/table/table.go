// Package table holds an immutable, column-typed view of spreadsheet rows.
// Every operation returns a new Table; the receiver is never modified.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeader is returned when a sheet has no header row.
var ErrNoHeader = errors.New("sheet has no header row")

// Column describes a named, typed column.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Table is an ordered set of typed rows.
type Table struct {
	columns []Column
	index   map[string]int
	rows    [][]Value
}

// New builds a table. Rows shorter than the column list are padded with
// nulls; longer rows are truncated.
func New(columns []Column, rows [][]Value) *Table {
	t := &Table{
		columns: append([]Column(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]Value, len(rows)),
	}
	for i, c := range t.columns {
		if _, dup := t.index[c.Name]; !dup {
			t.index[c.Name] = i
		}
	}
	for i, r := range rows {
		row := make([]Value, len(t.columns))
		copy(row, r)
		t.rows[i] = row
	}
	return t
}

// FromRecords builds a table from raw sheet rows. The first row is the
// header; the kind of every column is inferred once from its cells.
func FromRecords(records [][]string) (*Table, error) {
	return FromSheet(records, nil)
}

// FromSheet is FromRecords for readers that know the stored cell types.
// isText reports whether records[row][col] was stored as a string; any
// such body cell makes its column text, whatever it looks like. A nil
// isText leaves every column to Infer.
func FromSheet(records [][]string, isText func(row, col int) bool) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := records[0]
	width := len(header)
	for width > 0 && strings.TrimSpace(header[width-1]) == "" {
		width--
	}
	if width == 0 {
		return nil, ErrNoHeader
	}

	body := make([][]string, 0, len(records)-1)
	bodyIdx := make([]int, 0, len(records)-1)
	for i, r := range records[1:] {
		if blank(r) {
			continue
		}
		body = append(body, r)
		bodyIdx = append(bodyIdx, i+1)
	}

	columns := make([]Column, width)
	for c := 0; c < width; c++ {
		name := strings.TrimSpace(header[c])
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", c)
		}
		cells := make([]string, len(body))
		stored := false
		for i, r := range body {
			cells[i] = cell(r, c)
			if isText != nil && !stored && strings.TrimSpace(cells[i]) != "" {
				stored = isText(bodyIdx[i], c)
			}
		}
		kind := KindText
		if !stored {
			kind = Infer(cells)
		}
		columns[c] = Column{Name: name, Kind: kind}
	}

	rows := make([][]Value, len(body))
	for i, r := range body {
		row := make([]Value, width)
		for c := 0; c < width; c++ {
			row[c] = Parse(cell(r, c), columns[c].Kind)
		}
		rows[i] = row
	}

	return New(columns, rows), nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Columns returns a copy of the column list.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Has reports whether every named column exists.
func (t *Table) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := t.index[n]; !ok {
			return false
		}
	}
	return true
}

// Kind returns the kind of the named column.
func (t *Table) Kind(name string) (Kind, bool) {
	i, ok := t.index[name]
	if !ok {
		return KindNull, false
	}
	return t.columns[i].Kind, true
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i-th row.
func (t *Table) Row(i int) Row { return Row{t: t, i: i} }

// Rows returns every row in order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i := range t.rows {
		out[i] = Row{t: t, i: i}
	}
	return out
}

// Where returns the rows for which keep is true, in their original order.
func (t *Table) Where(keep func(Row) bool) *Table {
	out := &Table{columns: t.columns, index: t.index}
	for i, r := range t.rows {
		if keep(Row{t: t, i: i}) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// Rename returns a table where column from is called to. Renaming a
// missing column is a no-op.
func (t *Table) Rename(from, to string) *Table {
	i, ok := t.index[from]
	if !ok || from == to {
		return t
	}
	cols := t.Columns()
	cols[i].Name = to
	return New(cols, t.rows)
}

// Convert returns a table where the named column is rewritten cell by cell
// and retyped as kind.
func (t *Table) Convert(name string, kind Kind, fn func(Value) Value) *Table {
	idx, ok := t.index[name]
	if !ok {
		return t
	}
	cols := t.Columns()
	cols[idx].Kind = kind
	rows := make([][]Value, len(t.rows))
	for i, r := range t.rows {
		row := append([]Value(nil), r...)
		row[idx] = fn(r[idx])
		rows[i] = row
	}
	return New(cols, rows)
}

// Distinct returns the distinct non-null values of a column in first-seen
// order, keyed by their text rendering.
func (t *Table) Distinct(name string) []Value {
	idx, ok := t.index[name]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	var out []Value
	for _, r := range t.rows {
		v := r[idx]
		if v.IsNull() {
			continue
		}
		k := v.String()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Row is a read-only handle on one table row.
type Row struct {
	t *Table
	i int
}

// Get returns the named cell, or null when the column does not exist.
func (r Row) Get(name string) Value {
	idx, ok := r.t.index[name]
	if !ok {
		return Null()
	}
	return r.t.rows[r.i][idx]
}

// Lookup returns the named cell and whether the column exists.
func (r Row) Lookup(name string) (Value, bool) {
	idx, ok := r.t.index[name]
	if !ok {
		return Null(), false
	}
	return r.t.rows[r.i][idx], true
}

// Map returns the row as column name to text, omitting nulls.
func (r Row) Map() map[string]string {
	out := make(map[string]string, len(r.t.columns))
	for i, c := range r.t.columns {
		v := r.t.rows[r.i][i]
		if v.IsNull() {
			continue
		}
		out[c.Name] = v.String()
	}
	return out
}

package table

// Suffixes appended to overlapping non-key column names by LeftJoin.
const (
	LeftSuffix  = "_x"
	RightSuffix = "_y"
)

// LeftJoin keeps every row of t in order and appends the columns of right,
// matched on t[leftKey] == right[rightKey] by canonical key. A left row
// matching several right rows is repeated once per match; a left row with
// no match gets nulls on the right side. When both keys share a name the
// right key column is dropped. Other overlapping names get LeftSuffix and
// RightSuffix.
func (t *Table) LeftJoin(right *Table, leftKey, rightKey string) *Table {
	li, lok := t.index[leftKey]
	ri, rok := right.index[rightKey]
	if !lok || !rok {
		return nil
	}

	dropRightKey := leftKey == rightKey

	rightNames := make(map[string]struct{}, len(right.columns))
	for j, c := range right.columns {
		if dropRightKey && j == ri {
			continue
		}
		rightNames[c.Name] = struct{}{}
	}

	columns := make([]Column, 0, len(t.columns)+len(right.columns))
	for _, c := range t.columns {
		if _, clash := rightNames[c.Name]; clash {
			c.Name += LeftSuffix
		}
		columns = append(columns, c)
	}
	rightCols := make([]int, 0, len(right.columns))
	for j, c := range right.columns {
		if dropRightKey && j == ri {
			continue
		}
		if _, clash := t.index[c.Name]; clash {
			c.Name += RightSuffix
		}
		columns = append(columns, c)
		rightCols = append(rightCols, j)
	}

	matches := make(map[string][]int)
	for j, r := range right.rows {
		if k, ok := r[ri].Key(); ok {
			matches[k] = append(matches[k], j)
		}
	}

	rows := make([][]Value, 0, len(t.rows))
	for _, l := range t.rows {
		var hits []int
		if k, ok := l[li].Key(); ok {
			hits = matches[k]
		}
		if len(hits) == 0 {
			row := make([]Value, len(columns))
			copy(row, l)
			rows = append(rows, row)
			continue
		}
		for _, j := range hits {
			row := make([]Value, 0, len(columns))
			row = append(row, l...)
			for _, c := range rightCols {
				row = append(row, right.rows[j][c])
			}
			rows = append(rows, row)
		}
	}

	return New(columns, rows)
}

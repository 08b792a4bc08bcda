package table

// Merged accumulates the consolidated output. The column set is fixed at
// construction: the two provenance columns first, then the policy-retained
// columns. Every appended table is reindexed onto exactly that set; a column
// the sheet does not carry is filled with the empty-string null marker.
type Merged struct {
	columns []Column
	rows    [][]string
}

// NewMerged fixes the merged column set from the retained columns.
func NewMerged(retained []Column) *Merged {
	columns := make([]Column, 0, len(retained)+2)
	columns = append(columns,
		Column{Key: Normalize(SourceFileColumn), Label: SourceFileColumn},
		Column{Key: Normalize(SheetNameColumn), Label: SheetNameColumn},
	)
	columns = append(columns, retained...)
	return &Merged{columns: columns}
}

// Append reindexes t's data rows onto the fixed column set, tagging each row
// with t's provenance. Returns the number of rows appended.
func (m *Merged) Append(t *Table) int {
	idx := t.KeyIndex()
	for _, row := range t.Rows {
		out := make([]string, len(m.columns))
		out[0] = t.File
		out[1] = t.Sheet
		for i, col := range m.columns[2:] {
			if j, ok := idx[col.Key]; ok && j < len(row) {
				out[i+2] = row[j]
			}
		}
		m.rows = append(m.rows, out)
	}
	return len(t.Rows)
}

// Header returns the output header row: provenance labels, then retained
// labels in policy order.
func (m *Merged) Header() []string {
	header := make([]string, len(m.columns))
	for i, col := range m.columns {
		header[i] = col.Label
	}
	return header
}

// Rows returns the accumulated data rows in append order.
func (m *Merged) Rows() [][]string {
	return m.rows
}

// Len reports the number of accumulated data rows.
func (m *Merged) Len() int {
	return len(m.rows)
}

// Empty reports whether no sheet contributed any rows.
func (m *Merged) Empty() bool {
	return len(m.rows) == 0
}

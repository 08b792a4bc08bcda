package table

// Provenance column labels, always the first two columns of the merged output.
const (
	SourceFileColumn = "Source File"
	SheetNameColumn  = "Sheet Name"
)

// Table is one sheet's extracted data: the header row plus data rows, tagged
// with the file and sheet it came from. Rows are positional and rectangular:
// len(row) == len(Header) for every row.
type Table struct {
	File   string
	Sheet  string
	Header []string
	Rows   [][]string
}

// KeyIndex maps each normalized header key to the position of its last
// occurrence in the header. Later duplicates win, matching the merge's
// last-write-wins contract for colliding labels.
func (t *Table) KeyIndex() map[string]int {
	idx := make(map[string]int, len(t.Header))
	for i, label := range t.Header {
		idx[Normalize(label)] = i
	}
	return idx
}

// Keys returns the distinct normalized keys of the header in first-occurrence
// order.
func (t *Table) Keys() []string {
	seen := make(map[string]bool, len(t.Header))
	keys := make([]string, 0, len(t.Header))
	for _, label := range t.Header {
		key := Normalize(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

package app

import (
	"fmt"

	"sheetfuse/ports"
)

// fakeSheet serves a grid of cells through the ports.Sheet surface.
type fakeSheet struct {
	name       string
	grid       [][]string
	hiddenRows map[int]bool
	hiddenCols map[int]bool
}

func (f *fakeSheet) Name() string {
	if f.name == "" {
		return "Sheet1"
	}
	return f.name
}

func (f *fakeSheet) Dims() (int, int) {
	maxCol := 0
	for _, row := range f.grid {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return len(f.grid), maxCol
}

func (f *fakeSheet) Cell(row, col int) string {
	if row < 1 || row > len(f.grid) {
		return ""
	}
	r := f.grid[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

func (f *fakeSheet) RowHidden(row int) bool { return f.hiddenRows[row] }
func (f *fakeSheet) ColHidden(col int) bool { return f.hiddenCols[col] }

type fakeWorkbook struct {
	sheets []*fakeSheet
	closed bool
}

func (w *fakeWorkbook) Sheets() []string {
	names := make([]string, len(w.sheets))
	for i, s := range w.sheets {
		names[i] = s.Name()
	}
	return names
}

func (w *fakeWorkbook) Sheet(name string) (ports.Sheet, error) {
	for _, s := range w.sheets {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no such sheet: %s", name)
}

func (w *fakeWorkbook) Close() error {
	w.closed = true
	return nil
}

type fakeDecoder struct {
	books map[string]*fakeWorkbook
	fail  map[string]error
}

func (d *fakeDecoder) Open(path string) (ports.Workbook, error) {
	if err := d.fail[path]; err != nil {
		return nil, err
	}
	wb, ok := d.books[path]
	if !ok {
		return nil, fmt.Errorf("no such workbook: %s", path)
	}
	return wb, nil
}

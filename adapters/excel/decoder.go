package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sheetfuse/ports"
)

// Decoder opens workbooks through excelize.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

func (d *Decoder) Open(path string) (ports.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &workbook{file: f}, nil
}

type workbook struct {
	file *excelize.File
}

func (w *workbook) Sheets() []string {
	return w.file.GetSheetList()
}

func (w *workbook) Close() error {
	return w.file.Close()
}

// Sheet materializes the named sheet's populated cells. GetRows already trims
// trailing empty rows and columns, so its extent is exactly the maximum
// populated row/column the region scan needs.
func (w *workbook) Sheet(name string) (ports.Sheet, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return &sheet{file: w.file, name: name, rows: rows, maxCol: maxCol}, nil
}

type sheet struct {
	file   *excelize.File
	name   string
	rows   [][]string
	maxCol int
}

func (s *sheet) Name() string {
	return s.name
}

func (s *sheet) Dims() (int, int) {
	return len(s.rows), s.maxCol
}

func (s *sheet) Cell(row, col int) string {
	if row < 1 || row > len(s.rows) {
		return ""
	}
	r := s.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// RowHidden reads the row visibility flag; lookup failures read as visible.
func (s *sheet) RowHidden(row int) bool {
	visible, err := s.file.GetRowVisible(s.name, row)
	if err != nil {
		return false
	}
	return !visible
}

func (s *sheet) ColHidden(col int) bool {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return false
	}
	visible, err := s.file.GetColVisible(s.name, name)
	if err != nil {
		return false
	}
	return !visible
}

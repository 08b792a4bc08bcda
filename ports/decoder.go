package ports

// Sheet is the cell-access surface a decoder exposes for one worksheet.
// Coordinates are 1-based; reads outside the populated area return "".
type Sheet interface {
	Name() string
	// Dims returns the maximum populated row and column.
	Dims() (rows, cols int)
	Cell(row, col int) string
	// RowHidden reports the source format's row visibility flag. Absent
	// metadata reads as visible.
	RowHidden(row int) bool
	ColHidden(col int) bool
}

// Workbook is one open spreadsheet file.
type Workbook interface {
	// Sheets lists sheet names in source-declared order.
	Sheets() []string
	Sheet(name string) (Sheet, error)
	Close() error
}

// Decoder opens a spreadsheet file. Failures surface to the consolidator as
// file-level decode errors.
type Decoder interface {
	Open(path string) (Workbook, error)
}

package app

import (
	"sheetfuse/domain/table"
	"sheetfuse/ports"
)

// SheetLoader turns one worksheet into a table.Table: region detection,
// visibility filtering, header split.
type SheetLoader struct {
	// IncludeHidden keeps rows and columns the source marks hidden.
	IncludeHidden bool
}

// Load extracts the sheet's table. A sheet whose detected region has no
// header row plus at least one data row yields nil: a normal empty result,
// not an error, and never warned about.
func (l *SheetLoader) Load(file string, sheet ports.Sheet) *table.Table {
	region := DetectRegion(sheet)
	if !region.HasTable() {
		return nil
	}

	cols := l.visibleColumns(sheet, region)
	if len(cols) == 0 {
		return nil
	}

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = sheet.Cell(1, col)
	}

	rows := make([][]string, 0, region.LastRow-1)
	for r := 2; r <= region.LastRow; r++ {
		if !l.IncludeHidden && sheet.RowHidden(r) {
			continue
		}
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = sheet.Cell(r, col)
		}
		rows = append(rows, row)
	}

	return &table.Table{
		File:   file,
		Sheet:  sheet.Name(),
		Header: header,
		Rows:   rows,
	}
}

// visibleColumns lists the region's column indexes with hidden columns
// removed, checked only within the detected range. Row filtering never
// touches the header row, so only columns are decided here.
func (l *SheetLoader) visibleColumns(sheet ports.Sheet, region Region) []int {
	cols := make([]int, 0, region.LastCol)
	for c := 1; c <= region.LastCol; c++ {
		if !l.IncludeHidden && sheet.ColHidden(c) {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

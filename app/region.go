package app

import "sheetfuse/ports"

// Region is the contiguous rectangular block of populated cells anchored at
// (1,1). Bounds are 1-based and inclusive; the zero value means no block.
type Region struct {
	LastRow int
	LastCol int
}

// HasTable reports whether the region holds a header row plus at least one
// data row.
func (r Region) HasTable() bool {
	return r.LastRow >= 2 && r.LastCol >= 1
}

// DetectRegion finds the first contiguous block of populated cells from the
// top of the sheet. Rows are scanned in order and the block ends at the first
// fully-empty row; rows past a gap never join the table. Columns are then
// bounded the same way, testing emptiness only within the bounded rows.
// Only cell emptiness matters, never formatting.
func DetectRegion(sheet ports.Sheet) Region {
	maxRow, maxCol := sheet.Dims()

	var region Region
	for row := 1; row <= maxRow; row++ {
		if rowEmpty(sheet, row, maxCol) {
			break
		}
		region.LastRow = row
	}

	for col := 1; col <= maxCol; col++ {
		if colEmpty(sheet, col, region.LastRow) {
			break
		}
		region.LastCol = col
	}

	return region
}

func rowEmpty(sheet ports.Sheet, row, maxCol int) bool {
	for col := 1; col <= maxCol; col++ {
		if sheet.Cell(row, col) != "" {
			return false
		}
	}
	return true
}

func colEmpty(sheet ports.Sheet, col, lastRow int) bool {
	for row := 1; row <= lastRow; row++ {
		if sheet.Cell(row, col) != "" {
			return false
		}
	}
	return true
}

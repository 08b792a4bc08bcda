package ports

import "sheetfuse/domain/table"

// TableWriter serializes the merged table to a spreadsheet file at path:
// header row first, then data rows in accumulation order.
type TableWriter interface {
	Write(path string, m *table.Merged) error
}

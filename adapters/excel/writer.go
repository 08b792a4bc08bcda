package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sheetfuse/domain/table"
)

// MergedSheetName is the sheet the writer emits into.
const MergedSheetName = "Merged"

// Writer serializes a merged table to an .xlsx file through excelize's
// stream writer: header row first, data rows in accumulation order.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Write(path string, m *table.Merged) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), MergedSheetName); err != nil {
		return fmt.Errorf("rename output sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(MergedSheetName)
	if err != nil {
		return fmt.Errorf("create stream writer: %w", err)
	}

	if err := writeRow(sw, 1, m.Header()); err != nil {
		return err
	}
	for i, row := range m.Rows() {
		if err := writeRow(sw, i+2, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeRow(sw *excelize.StreamWriter, rowIdx int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, v := range cells {
		values[i] = v
	}
	if err := sw.SetRow(cell, values); err != nil {
		return fmt.Errorf("write row %d: %w", rowIdx, err)
	}
	return nil
}

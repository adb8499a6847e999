package ledger

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetNames lists the worksheets of a workbook in order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// LoadXLSX reads one sheet of an Excel workbook into a Table. The first row
// is the header; an empty sheet name selects the workbook's first sheet.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %v", sheet, err)
	}
	if len(rows) == 0 {
		return NewTable(nil), nil
	}
	t := NewTable(rows[0])
	for _, row := range rows[1:] {
		t.AppendRow(row)
	}
	return t, nil
}

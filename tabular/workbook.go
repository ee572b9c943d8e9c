package tabular

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbook reads the first sheet of an xlsx payload. Legacy .xls files
// are not readable by excelize and surface its error.
func ParseWorkbook(data []byte) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var table Table
	for _, row := range rows {
		if r, ok := normalizeRow(row); ok {
			table = append(table, r)
		}
	}
	return table, nil
}

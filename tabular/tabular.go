package tabular

import "strings"

// Table is an ordered sequence of rows, each an ordered sequence of cells.
type Table [][]string

// Source produces a Table from a downloaded payload.
type Source interface {
	Rows() (Table, error)
}

// DelimitedText is decoded CSV text.
type DelimitedText string

// Rows parses the text as CSV.
func (d DelimitedText) Rows() (Table, error) {
	return ParseCSV(string(d)), nil
}

// Workbook is a raw spreadsheet payload.
type Workbook []byte

// Rows reads the first sheet of the workbook.
func (w Workbook) Rows() (Table, error) {
	return ParseWorkbook(w)
}

// Header returns the first row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Data returns every row after the header.
func (t Table) Data() Table {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// normalizeRow trims every cell and reports whether any cell is non-empty.
func normalizeRow(row []string) ([]string, bool) {
	keep := false
	for i, c := range row {
		row[i] = strings.TrimSpace(c)
		if row[i] != "" {
			keep = true
		}
	}
	return row, keep
}

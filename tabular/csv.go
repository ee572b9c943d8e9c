package tabular

import "strings"

// ParseCSV scans RFC 4180 style CSV. Inside quotes, "" is a literal quote and
// commas and newlines are data. Carriage returns are dropped everywhere. A
// final field or row without a trailing newline is still emitted.
func ParseCSV(text string) Table {
	var (
		table    Table
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		if r, ok := normalizeRow(row); ok {
			table = append(table, r)
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\r' {
			continue
		}
		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				field.WriteByte(c)
			}
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case ',':
			endField()
		case '\n':
			endRow()
		default:
			field.WriteByte(c)
		}
	}
	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}
	return table
}

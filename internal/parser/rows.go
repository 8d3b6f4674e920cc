package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row maps a CSV column name to its raw cell value
type Row map[string]string

// Get returns the cell for column, or an empty string if the row lacks it
func (r Row) Get(column string) string {
	return r[column]
}

// ReadRows reads a CSV document with a header row into column-keyed rows.
// Short rows yield empty cells and repeated headers keep the last column.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV row %d: %w", line, err)
		}

		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

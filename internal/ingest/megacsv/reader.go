// Package megacsv loads exported mega CSVs and splits them into per-entity
// slices. A mega CSV carries both the team's rows and every player's rows,
// distinguished by the Row column.
package megacsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Table is a parsed CSV: an ordered header plus one map per data row.
// Cells absent from a short record read as the empty string.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ReadTable loads a CSV file. Exports are usually UTF-8 but some tools emit
// Latin-1; invalid UTF-8 input is decoded as Latin-1 before parsing. A
// leading literal "Table 1" banner line is skipped when present.
func ReadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading csv file: %w", err)
	}

	if !utf8.Valid(data) {
		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, fmt.Errorf("decoding csv file: %w", decErr)
		}
		data = decoded
	}

	return parseTable(data)
}

func parseTable(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) > 0 && isBannerRecord(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	table := &Table{Columns: header}
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// isBannerRecord matches the "Table 1" line some exporters prepend.
func isBannerRecord(record []string) bool {
	if len(record) == 0 || strings.TrimSpace(record[0]) != "Table 1" {
		return false
	}
	for _, field := range record[1:] {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// writeRows writes a slice of rows back out under the given header.
func writeRows(path string, columns []string, rows []map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv slice: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

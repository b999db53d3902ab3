// Package export turns table rows into downloadable CSV and XLSX files.
package export

import (
	"errors"
	"strings"
)

// ErrNoRows is returned when there is nothing to export; no file is produced.
var ErrNoRows = errors.New("no rows to export")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// ParseFormat accepts "csv" or "xlsx" in any case.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, true
	case FormatXLSX:
		return FormatXLSX, true
	}
	return "", false
}

// FileName is "<resource>_export.<format>".
func FileName(resource string, f Format) string {
	return resource + "_export." + string(f)
}

// Column maps a row to one cell of the export.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Table is the header and cell text of a set of rows.
func Table[T any](rows []T, columns []Column[T]) (header []string, cells [][]string) {
	header = make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Header
	}
	cells = make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(columns))
		for i, c := range columns {
			line[i] = c.Value(row)
		}
		cells = append(cells, line)
	}
	return header, cells
}

// YesNo renders a flag the way the tables show it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// OrNA substitutes "N/A" for an empty value.
func OrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// Workbook renders an XLSX file with a single sheet named after the
// resource: the header row, then one row per record.
func Workbook[T any](rows []T, columns []Column[T], sheet string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	header, cells := Table(rows, columns)

	f := excelize.NewFile()
	defer f.Close()

	name := SheetName(sheet)
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return nil, fmt.Errorf("sheet name: %w", err)
	}

	if err := setRow(f, name, 1, header); err != nil {
		return nil, err
	}
	for i, line := range cells {
		if err := setRow(f, name, i+2, line); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// SheetName strips characters Excel rejects and truncates to the limit.
func SheetName(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, s)
	if s = strings.TrimSpace(s); s == "" {
		s = "Sheet1"
	}
	if r := []rune(s); len(r) > maxSheetName {
		s = string(r[:maxSheetName])
	}
	return s
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	line := make([]any, len(values))
	for i, v := range values {
		line[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &line); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

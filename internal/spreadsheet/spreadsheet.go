// Package spreadsheet is the xlsx codec: it turns uploaded workbooks into
// tables and confirmation rows back into workbook bytes.
package spreadsheet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet every generated workbook carries its data on.
const SheetName = "Datos"

// Table is the raw tabular content of one workbook sheet: the first row as
// headers, the rest as data rows. Cell values are kept verbatim; trimming
// is left to the normalizers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, comparing trimmed
// header text, or -1 when the column is absent.
func (t *Table) ColumnIndex(name string) int {
	want := strings.TrimSpace(name)
	for i, header := range t.Headers {
		if strings.TrimSpace(header) == want {
			return i
		}
	}
	return -1
}

// MissingColumns returns which of the given names have no matching header.
func (t *Table) MissingColumns(names ...string) []string {
	var missing []string
	for _, name := range names {
		if t.ColumnIndex(name) == -1 {
			missing = append(missing, name)
		}
	}
	return missing
}

// Cell returns the value at column idx of row, or "" when the row is
// shorter. Tables built by hand may carry ragged rows.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// IsXLSX reports whether data starts with the xlsx ZIP signature.
func IsXLSX(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}

// IsLegacyWorkbook reports whether data is an OLE2 compound document, the
// container of legacy .xls workbooks.
func IsLegacyWorkbook(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0xD0 && data[1] == 0xCF && data[2] == 0x11 && data[3] == 0xE0
}

// Read parses the first sheet of an xlsx workbook into a Table. Data rows
// shorter than the header are padded with empty cells so positional access
// stays in bounds.
func Read(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if IsLegacyWorkbook(data) {
		return nil, fmt.Errorf("legacy .xls workbooks are not supported, save the file as .xlsx")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	table := &Table{Headers: rows[0]}
	for _, row := range rows[1:] {
		if len(row) < len(table.Headers) {
			padded := make([]string, len(table.Headers))
			copy(padded, row)
			row = padded
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Write builds an xlsx workbook with a single sheet named SheetName and
// returns its bytes. Cell values keep their Go type, so numeric values
// become numeric cells.
func Write(headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	for i := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, colName, colName, 18); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

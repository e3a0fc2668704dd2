package loader

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "crashprep/internal/errors"
)

// RawTable is an untyped tabular snapshot of one source file. Cells are raw
// strings exactly as they arrived, trimmed of surrounding whitespace.
type RawTable struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// NewRawTable builds a table from headers and rows, indexing columns by
// upper-cased header name.
func NewRawTable(headers []string, rows [][]string) *RawTable {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	return &RawTable{Headers: headers, Rows: rows, index: index}
}

// HasColumn reports whether the table carries the named column.
func (t *RawTable) HasColumn(name string) bool {
	_, ok := t.index[strings.ToUpper(name)]
	return ok
}

// Field returns the trimmed cell for the named column in row i. Absent
// columns and short rows return the empty string, which the recoder treats
// as missing.
func (t *RawTable) Field(i int, name string) string {
	idx, ok := t.index[strings.ToUpper(name)]
	if !ok {
		return ""
	}
	row := t.Rows[i]
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Len returns the number of data rows.
func (t *RawTable) Len() int {
	return len(t.Rows)
}

// RequireColumns verifies the fixed expected column set for a source table.
func (t *RawTable) RequireColumns(names ...string) error {
	var missing []string
	for _, name := range names {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// ReadTable reads a source file into a RawTable, dispatching on extension.
func ReadTable(path string) (*RawTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readExcel(path)
	default:
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("unsupported input format: %s", filepath.Ext(path)), nil)
	}
}

// readCSV reads a CSV file. Ragged rows are tolerated; short rows read as
// missing cells rather than failing the run.
func readCSV(path string) (*RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open input file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read CSV input", err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewParsingError("input file has no header row", nil)
	}

	headers := stripBOM(records[0])
	table := NewRawTable(headers, records[1:])

	slog.Debug("Loaded CSV table",
		slog.String("path", path),
		slog.Int("columns", len(headers)),
		slog.Int("rows", table.Len()))

	return table, nil
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
func stripBOM(headers []string) []string {
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	return headers
}

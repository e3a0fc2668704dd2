package loader

import (
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "crashprep/internal/errors"
)

// readExcel reads the first sheet of a workbook that contains a recognizable
// header row. Some agencies ship the yearly extract as a workbook with a
// cover sheet, so the header row is discovered rather than assumed at row 0.
func readExcel(path string) (*RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open workbook", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}

		headerRow := findHeaderRow(rows)
		if headerRow < 0 {
			continue
		}

		table := NewRawTable(rows[headerRow], rows[headerRow+1:])

		slog.Debug("Loaded Excel table",
			slog.String("path", path),
			slog.String("sheet", name),
			slog.Int("header_row", headerRow),
			slog.Int("rows", table.Len()))

		return table, nil
	}

	return nil, apperrors.NewParsingError("could not find a data sheet in workbook", nil)
}

// findHeaderRow locates the header row by looking for the crash record number
// column, which every source table carries.
func findHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.EqualFold(strings.TrimSpace(cell), "CRN") {
				return i
			}
		}
	}
	return -1
}

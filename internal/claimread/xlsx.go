package claimread

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/claimstats/internal/model"
)

// ReadXLSX reads a claim export workbook. The first sheet whose header row
// carries a TID column wins; when no sheet qualifies the first sheet is
// read anyway so that missing-column validation can report what is wrong.
func ReadXLSX(path string) ([]model.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	var rows [][]string
	found := false
	for _, name := range sheets {
		sheetRows, err := f.GetRows(name)
		if err != nil || len(sheetRows) == 0 {
			continue
		}
		if hasTIDHeader(sheetRows[0]) {
			rows = sheetRows
			found = true
			break
		}
	}
	if !found {
		rows, err = f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
		}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := make([]model.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, rowToRecord(header, row))
	}
	return records, nil
}

func hasTIDHeader(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) == model.ColTID {
			return true
		}
	}
	return false
}

// Package claimread loads claim export files into raw record tables.
package claimread

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gyeh/claimstats/internal/model"
)

// Format identifies a supported claim export file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatXLSX    Format = "xlsx"
	FormatParquet Format = "parquet"
)

// DetectFormat maps a file extension to a Format. No content sniffing: an
// unknown extension is an error the caller resolves with an explicit flag.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".parquet":
		return FormatParquet, nil
	}
	return "", fmt.Errorf("cannot infer format from extension of %q; pass --format", filepath.Base(path))
}

// ParseFormat validates a user-provided format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCSV, FormatXLSX, FormatParquet:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want csv, xlsx, or parquet)", s)
}

// Read loads the file in the given format.
func Read(path string, format Format) ([]model.RawRecord, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(path)
	case FormatXLSX:
		return ReadXLSX(path)
	case FormatParquet:
		return ReadParquet(path)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// rowToRecord maps cells onto header names. Missing trailing cells become
// empty strings so column presence is decided by the header, not row width.
func rowToRecord(header, row []string) model.RawRecord {
	rec := make(model.RawRecord, len(header))
	for i, col := range header {
		if col == "" {
			continue
		}
		if i < len(row) {
			rec[col] = strings.TrimSpace(row[i])
		} else {
			rec[col] = ""
		}
	}
	return rec
}

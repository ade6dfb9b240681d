package claimread

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/claimstats/internal/model"
)

const parquetBatchSize = 256

// ReadParquet streams a Parquet claim export into raw records. Optional
// columns missing from the schema stay absent from the records, so
// required-column validation still applies downstream.
func ReadParquet(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[model.ClaimExportRow](pf)
	defer reader.Close()

	records := make([]model.RawRecord, 0, reader.NumRows())
	buf := make([]model.ClaimExportRow, parquetBatchSize)
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			records = append(records, buf[i].ToRawRecord())
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read parquet rows: %w", readErr)
		}
	}
	return records, nil
}

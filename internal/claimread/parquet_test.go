package claimread

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/claimstats/internal/model"
)

func strPtr(s string) *string { return &s }

func writeParquet(t *testing.T, rows []model.ClaimExportRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claims.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create parquet: %v", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[model.ClaimExportRow](f)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("write rows: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return path
}

func TestReadParquet(t *testing.T) {
	path := writeParquet(t, []model.ClaimExportRow{
		{
			TID:            strPtr("1"),
			PatientName:    strPtr("Patient One"),
			HospitalName:   strPtr("City Hospital"),
			Status:         strPtr("Claim Paid"),
			PkgRate:        strPtr("1,00,000"),
			ApprovedAmount: strPtr("1,00,000"),
		},
		{
			TID:            strPtr("2"),
			PatientName:    strPtr("Patient Two"),
			HospitalName:   strPtr("City Hospital"),
			Status:         strPtr("Pending"),
			PkgRate:        strPtr("5000"),
			ApprovedAmount: strPtr("0"),
		},
	})

	records, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0][model.ColTID] != "1" || records[0][model.ColPkgRate] != "1,00,000" {
		t.Errorf("first record = %+v", records[0])
	}
	// Columns that were nil in the row stay absent from the record.
	if records[0].Has(model.ColQueryRaised) {
		t.Error("nil column should be absent, not empty")
	}
}

func TestReadParquet_MissingFile(t *testing.T) {
	if _, err := ReadParquet("/nonexistent/claims.parquet"); err == nil {
		t.Error("expected error for missing file")
	}
}

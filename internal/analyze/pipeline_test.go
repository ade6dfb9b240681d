package analyze_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/claimstats/internal/aggregate"
	"github.com/gyeh/claimstats/internal/analyze"
	"github.com/gyeh/claimstats/internal/model"
	"github.com/gyeh/claimstats/internal/projection"
)

func rawRow(tid, status, rate, approved string) model.RawRecord {
	return model.RawRecord{
		model.ColTID:            tid,
		model.ColPatientName:    "A Patient",
		model.ColHospitalName:   "City Hospital",
		model.ColStatus:         status,
		model.ColPkgRate:        rate,
		model.ColApprovedAmount: approved,
	}
}

func TestRun_EndToEnd(t *testing.T) {
	raws := []model.RawRecord{
		rawRow("1", "Claim Paid", "1,00,000", "1,00,000"),
		rawRow("1", "Claim Paid", "50,000", "50,000"),
		rawRow("2", "Claim Rejected (Supervisor)", "20,000", "0"),
		rawRow("", "Pending", "999", "0"), // no TID, skipped
	}

	rep, err := analyze.Run(zerolog.Nop(), "test.csv", raws, projection.Assumptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !rep.Validation.Valid {
		t.Errorf("validation = %+v, want valid", rep.Validation)
	}
	if rep.Summary.RowsRead != 4 || rep.Summary.RowsSkipped != 1 || rep.Summary.ClaimCount != 2 {
		t.Errorf("summary = %+v", rep.Summary)
	}
	if rep.Summary.RunID == "" {
		t.Error("RunID should be set")
	}

	if rep.Metrics == nil || rep.Projection == nil {
		t.Fatal("metrics and projection must both be present")
	}
	if rep.Metrics.TotalClaims != 2 {
		t.Errorf("TotalClaims = %d, want 2", rep.Metrics.TotalClaims)
	}
	if rep.Metrics.TotalClaimValue != 170000 {
		t.Errorf("TotalClaimValue = %v, want 170000", rep.Metrics.TotalClaimValue)
	}
	if rep.Metrics.DenialRate != 50 {
		t.Errorf("DenialRate = %v, want 50", rep.Metrics.DenialRate)
	}
	if rep.Projection.PaybackMonths != 4 {
		t.Errorf("PaybackMonths = %d, want 4", rep.Projection.PaybackMonths)
	}
}

func TestRun_MissingColumns(t *testing.T) {
	raw := rawRow("1", "Pending", "100", "100")
	delete(raw, model.ColTID)

	_, err := analyze.Run(zerolog.Nop(), "", []model.RawRecord{raw}, projection.Assumptions{})
	var pe *analyze.PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PipelineError, got %v", err)
	}
	if pe.Phase != "aggregate" {
		t.Errorf("phase = %q, want aggregate", pe.Phase)
	}
	var ve *aggregate.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected wrapped ValidationError, got %v", err)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	_, err := analyze.Run(zerolog.Nop(), "", nil, projection.Assumptions{})
	if !errors.Is(err, aggregate.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if res := analyze.Validate(nil); res.Valid {
		t.Error("empty table should be invalid")
	}
	res := analyze.Validate([]model.RawRecord{rawRow("1", "Pending", "1", "1")})
	if !res.Valid {
		t.Errorf("expected valid, got %+v", res)
	}
}

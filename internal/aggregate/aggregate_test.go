package aggregate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/gyeh/claimstats/internal/aggregate"
	"github.com/gyeh/claimstats/internal/model"
	"github.com/gyeh/claimstats/internal/normalize"
)

// rawRow builds a full-width raw record; opts mutate it.
func rawRow(tid, status, rate, approved string, opts ...func(model.RawRecord)) model.RawRecord {
	r := model.RawRecord{
		model.ColTID:            tid,
		model.ColPatientName:    "A Patient",
		model.ColHospitalName:   "City Hospital",
		model.ColStatus:         status,
		model.ColPkgCode:        "PKG-1",
		model.ColPkgName:        "Package One",
		model.ColPkgRate:        rate,
		model.ColApprovedAmount: approved,
		model.ColQueryRaised:    "",
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func normalizeAll(raws ...model.RawRecord) []model.NormalizedRecord {
	return normalize.ToNormalizedRecords(raws)
}

func TestAggregate_EmptyInput(t *testing.T) {
	_, err := aggregate.Aggregate(nil)
	if !errors.Is(err, aggregate.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestAggregate_MissingColumns(t *testing.T) {
	raw := rawRow("1", "Pending", "100", "100")
	delete(raw, model.ColTID)
	_, err := aggregate.Aggregate(normalizeAll(raw))

	var ve *aggregate.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got, want := ve.Error(), "Missing required columns: TID"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestAggregate_MissingColumnsCanonicalOrder(t *testing.T) {
	raw := rawRow("1", "Pending", "100", "100")
	delete(raw, model.ColTID)
	delete(raw, model.ColStatus)
	delete(raw, model.ColApprovedAmount)
	_, err := aggregate.Aggregate(normalizeAll(raw))
	if err == nil {
		t.Fatal("expected error")
	}
	want := "Missing required columns: TID, Status, Approved Amount"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestAggregate_GroupsByTID(t *testing.T) {
	claims, err := aggregate.Aggregate(normalizeAll(
		rawRow("5", "Claim Paid", "10000", "9000"),
		rawRow("5", "Claim Paid", "20000", "18000"),
	))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	c := claims[0]
	if c.PkgRate != 30000 {
		t.Errorf("PkgRate = %v, want 30000", c.PkgRate)
	}
	if c.ApprovedAmount != 27000 {
		t.Errorf("ApprovedAmount = %v, want 27000", c.ApprovedAmount)
	}
	if c.ActualPaidAmount != 27000 {
		t.Errorf("ActualPaidAmount = %v, want 27000", c.ActualPaidAmount)
	}
	if len(c.Components) != 2 {
		t.Errorf("components = %d, want 2", len(c.Components))
	}
}

func TestAggregate_MaxFields(t *testing.T) {
	row1 := rawRow("9", "Pending", "100", "0")
	row1[model.ColQueryRaised] = "1"
	row1[model.ColDaysToPayment] = "10"
	row2 := rawRow("9", "Pending", "200", "0")
	row2[model.ColQueryRaised] = "3"
	row2[model.ColDaysToPayment] = "4"

	claims, err := aggregate.Aggregate(normalizeAll(row1, row2))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	c := claims[0]
	// QueryRaised and DaysToPayment take the max, not the sum.
	if c.QueryRaised != 3 {
		t.Errorf("QueryRaised = %v, want 3", c.QueryRaised)
	}
	if c.DaysToPayment != 10 {
		t.Errorf("DaysToPayment = %v, want 10", c.DaysToPayment)
	}
}

func TestAggregate_SkipsRowsWithoutTID(t *testing.T) {
	claims, err := aggregate.Aggregate(normalizeAll(
		rawRow("1", "Pending", "100", "100"),
		rawRow("", "Pending", "999", "999"),
		rawRow("2", "Pending", "200", "200"),
	))
	if err != nil {
		t.Fatalf("rows without TID must not error: %v", err)
	}
	if len(claims) != 2 {
		t.Fatalf("expected 2 claims, got %d", len(claims))
	}
	total := claims[0].PkgRate + claims[1].PkgRate
	if total != 300 {
		t.Errorf("skipped row leaked into totals: %v", total)
	}
}

func TestAggregate_FirstSeenOrderAndSeedFields(t *testing.T) {
	row1 := rawRow("B", "Claim Paid", "10", "10")
	row1[model.ColPatientName] = "First Patient"
	row2 := rawRow("A", "Pending", "20", "20")
	row3 := rawRow("B", "Claim Rejected (Supervisor)", "30", "30")
	row3[model.ColPatientName] = "Other Name"

	claims, err := aggregate.Aggregate(normalizeAll(row1, row2, row3))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if claims[0].TID != "B" || claims[1].TID != "A" {
		t.Errorf("order = %s, %s; want B, A", claims[0].TID, claims[1].TID)
	}
	// Descriptive fields stick with the first row seen.
	if claims[0].PatientName != "First Patient" || claims[0].Status != "Claim Paid" {
		t.Errorf("seed fields overwritten: %+v", claims[0])
	}
}

func TestAggregate_ComponentRateSumMatchesClaim(t *testing.T) {
	claims, err := aggregate.Aggregate(normalizeAll(
		rawRow("7", "Pending", "1234.56", "1000"),
		rawRow("7", "Pending", "0.44", "1"),
		rawRow("7", "Pending", "765.13", "700"),
	))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	var sum float64
	for _, comp := range claims[0].Components {
		sum += comp.PkgRate
	}
	if diff := math.Abs(sum-claims[0].PkgRate) / claims[0].PkgRate; diff > 1e-6 {
		t.Errorf("component sum %v != claim PkgRate %v (rel diff %v)", sum, claims[0].PkgRate, diff)
	}
}

func TestValidate(t *testing.T) {
	if res := aggregate.Validate(nil); res.Valid || res.Error == "" {
		t.Errorf("empty table should be invalid with a message, got %+v", res)
	}

	raw := rawRow("1", "Pending", "100", "100")
	if res := aggregate.Validate([]model.RawRecord{raw}); !res.Valid || res.Error != "" {
		t.Errorf("complete table should be valid, got %+v", res)
	}

	delete(raw, model.ColHospitalName)
	res := aggregate.Validate([]model.RawRecord{raw})
	if res.Valid {
		t.Fatal("missing column should be invalid")
	}
	if want := "Missing required columns: Hospital Name"; res.Error != want {
		t.Errorf("error = %q, want %q", res.Error, want)
	}
}

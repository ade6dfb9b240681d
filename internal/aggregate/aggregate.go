// Package aggregate validates claim tables and groups row-level records
// into per-TID Claim entities.
package aggregate

import (
	"errors"
	"strings"

	"github.com/gyeh/claimstats/internal/model"
)

// ErrEmptyInput is returned when the input table has no rows at all.
var ErrEmptyInput = errors.New("no claim records found in input")

// ValidationError reports required columns missing from the input table.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Missing required columns: " + strings.Join(e.Missing, ", ")
}

// CheckColumns verifies the required column set against a single record.
// Missing columns are reported in canonical order.
func CheckColumns(raw model.RawRecord) error {
	var missing []string
	for _, col := range model.RequiredColumns {
		if !raw.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Validate produces the renderer-facing validation result for a raw table.
func Validate(raws []model.RawRecord) model.ValidationResult {
	if len(raws) == 0 {
		return model.ValidationResult{Valid: false, Error: ErrEmptyInput.Error()}
	}
	if err := CheckColumns(raws[0]); err != nil {
		return model.ValidationResult{Valid: false, Error: err.Error()}
	}
	return model.ValidationResult{Valid: true}
}

// Aggregate groups normalized rows into Claims keyed by TID, in first-seen
// order. The first row for a TID seeds the claim's descriptive fields; every
// row (seed included) is appended as a component and accumulated: PkgRate,
// ApprovedAmount, and ActualPaidAmount sum, QueryRaised and DaysToPayment
// take the running maximum. Rows without a TID are dropped, not an error.
func Aggregate(rows []model.NormalizedRecord) ([]model.Claim, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	if err := CheckColumns(rows[0].Raw); err != nil {
		return nil, err
	}

	byTID := make(map[string]*model.Claim)
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		if row.TID == "" {
			continue
		}
		c, ok := byTID[row.TID]
		if !ok {
			c = &model.Claim{
				TID:           row.TID,
				PatientName:   row.PatientName,
				HospitalName:  row.HospitalName,
				Status:        row.Status,
				AdmissionDate: row.AdmissionDate,
				DischargeDate: row.DischargeDate,
				PaymentDate:   row.PaymentDate,
			}
			byTID[row.TID] = c
			order = append(order, row.TID)
		}

		c.Components = append(c.Components, model.ComponentRecord{
			PkgCode:        row.PkgCode,
			PkgName:        row.PkgName,
			PkgRate:        row.PkgRate,
			ApprovedAmount: row.ApprovedAmount,
		})
		c.PkgRate += row.PkgRate
		c.ApprovedAmount += row.ApprovedAmount
		c.ActualPaidAmount += row.ActualPaidAmount
		if row.QueryRaised > c.QueryRaised {
			c.QueryRaised = row.QueryRaised
		}
		if row.DaysToPayment > c.DaysToPayment {
			c.DaysToPayment = row.DaysToPayment
		}
	}

	claims := make([]model.Claim, 0, len(order))
	for _, tid := range order {
		claims = append(claims, *byTID[tid])
	}
	return claims, nil
}

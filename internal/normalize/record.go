package normalize

import (
	"math"
	"strings"
	"time"

	"github.com/gyeh/claimstats/internal/model"
)

// paidStatusMark is the substring identifying a settled claim. Matching is
// case-sensitive, mirroring the status strings the billing system emits.
const paidStatusMark = "Claim Paid"

// ToNormalizedRecord coerces one raw claim row into typed form and derives
// DaysToPayment and ActualPaidAmount. Coercion is total: bad numbers become
// 0, bad dates become nil, and the row itself is never rejected.
func ToNormalizedRecord(raw model.RawRecord) model.NormalizedRecord {
	rec := model.NormalizedRecord{
		Raw: raw,

		TID:          strings.TrimSpace(raw[model.ColTID]),
		PatientName:  raw[model.ColPatientName],
		HospitalName: raw[model.ColHospitalName],
		Status:       raw[model.ColStatus],
		PkgCode:      raw[model.ColPkgCode],
		PkgName:      raw[model.ColPkgName],

		PkgRate:        ParseNumber(raw[model.ColPkgRate]),
		ApprovedAmount: ParseNumber(raw[model.ColApprovedAmount]),
		QueryRaised:    ParseNumber(raw[model.ColQueryRaised]),

		AdmissionDate: ParseDate(raw[model.ColAdmissionDate]),
		DischargeDate: ParseDate(raw[model.ColDischargeDate]),
		PaymentDate:   ParseDate(raw[model.ColPaymentDate]),
	}

	rec.DaysToPayment = daysToPayment(raw[model.ColDaysToPayment], rec.DischargeDate, rec.PaymentDate)

	if strings.Contains(rec.Status, paidStatusMark) {
		rec.ActualPaidAmount = rec.ApprovedAmount
	}
	return rec
}

// ToNormalizedRecords normalizes a whole table, preserving row order.
func ToNormalizedRecords(raws []model.RawRecord) []model.NormalizedRecord {
	recs := make([]model.NormalizedRecord, len(raws))
	for i, raw := range raws {
		recs[i] = ToNormalizedRecord(raw)
	}
	return recs
}

// daysToPayment prefers the explicit column when it carries a number,
// falling back to the discharge→payment gap in whole days clamped at zero,
// then to zero when either date is missing.
func daysToPayment(explicit string, discharge, payment *time.Time) float64 {
	if IsNumeric(explicit) {
		return ParseNumber(explicit)
	}
	if discharge != nil && payment != nil {
		d := math.Floor(payment.Sub(*discharge).Hours() / 24)
		if d < 0 {
			return 0
		}
		return d
	}
	return 0
}

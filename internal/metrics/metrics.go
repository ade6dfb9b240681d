// Package metrics computes the descriptive KPI snapshot over aggregated
// claims and the normalized row table they came from.
package metrics

import (
	"math"
	"strings"
	"time"

	"github.com/gyeh/claimstats/internal/model"
)

// Status markers. Count classification matches case-sensitively on the
// exact strings the billing system emits; the amount buckets further down
// use lowercased matching instead. The asymmetry is inherited behavior
// that downstream numbers depend on, so it stays.
const (
	markPaid     = "Claim Paid"
	markApproved = "Approved"
	markPending  = "Pending"

	rejectedSupervisor = "Claim Rejected (Supervisor)"
	rejectedAnalyser   = "Claim Rejected (Analyser)"
)

const (
	highValueThreshold = 100000

	defaultLengthOfStay  = 4
	defaultDaysToPayment = 45
	defaultMonthsSpan    = 12

	healthScoreCap = 90
)

// DenialReasons is a fixed reference breakdown shown alongside the computed
// metrics; it is not derived from the input data.
var DenialReasons = []model.DenialReason{
	{Reason: "Incomplete documentation", Percentage: 32},
	{Reason: "Pre-authorization missing", Percentage: 24},
	{Reason: "Package code mismatch", Percentage: 18},
	{Reason: "Policy exclusions", Percentage: 15},
	{Reason: "Duplicate submission", Percentage: 11},
}

func isRejected(status string) bool {
	return status == rejectedSupervisor || status == rejectedAnalyser
}

// Compute builds the MetricsSnapshot for one analysis run. rows is the
// normalized row-level table and claims its per-TID aggregation; several
// sums deliberately use row granularity (see model.MetricsSnapshot), so
// both inputs are required. Pure function: no I/O, inputs unmodified.
func Compute(rows []model.NormalizedRecord, claims []model.Claim) *model.MetricsSnapshot {
	s := &model.MetricsSnapshot{DenialReasons: DenialReasons}

	s.TotalClaims = len(claims)
	var withQuery, withoutQuery, highValue int
	for _, c := range claims {
		if strings.Contains(c.Status, markPaid) {
			s.PaidClaims++
		}
		if strings.Contains(c.Status, markApproved) {
			s.ApprovedClaims++
		}
		if strings.Contains(c.Status, markPending) {
			s.PendingClaims++
		}
		if isRejected(c.Status) {
			s.RejectedClaims++
		}
		s.TotalClaimValue += c.PkgRate
		s.TotalApprovedAmount += c.ApprovedAmount
		if c.QueryRaised > 0 {
			withQuery++
		} else {
			withoutQuery++
		}
		if c.PkgRate > highValueThreshold {
			highValue++
		}
	}

	for _, r := range rows {
		lower := strings.ToLower(r.Status)
		if strings.Contains(r.Status, markPaid) {
			s.TotalPaidAmount += r.ApprovedAmount
		}
		if isRejected(r.Status) {
			s.RejectedClaimsAmount += r.PkgRate
		}
		if strings.Contains(lower, "approved") && strings.Contains(lower, "supervisor") {
			s.ApprovedUnpaidAmount += r.ApprovedAmount
		}
		if strings.Contains(lower, "claim query") {
			s.RevenueStuckInQuery += r.PkgRate
		}
	}

	s.DenialRate = pct(float64(s.RejectedClaims), float64(s.TotalClaims))
	s.QueryIncidence = pct(float64(withQuery), float64(s.TotalClaims))
	s.FirstPassRate = pct(float64(withoutQuery), float64(s.TotalClaims))
	s.CollectionEfficiency = pct(s.TotalPaidAmount, s.TotalApprovedAmount)
	s.RevenueLeakageRate = pct(s.RejectedClaimsAmount, s.TotalClaimValue)
	s.HighValueClaimsPercentage = pct(float64(highValue), float64(s.TotalClaims))

	if s.TotalClaims > 0 {
		s.AverageClaimAmount = math.Round(s.TotalClaimValue / float64(s.TotalClaims))
	}

	s.AvgLengthOfStay = avgLengthOfStay(claims)
	s.AvgDaysToPayment = avgDaysToPayment(claims, s.AvgLengthOfStay)

	s.MinDate, s.MaxDate = admissionBounds(rows)
	s.MonthsSpan = monthsSpan(s.MinDate, s.MaxDate)

	score := (100-s.DenialRate)*0.4 + s.CollectionEfficiency*0.4 + (100-s.QueryIncidence)*0.2
	s.HealthScore = math.Min(healthScoreCap, score)

	return s
}

// pct returns num/den×100, or 0 when the denominator is 0.
func pct(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}

// lengthOfStay is the admission→discharge gap in whole days, clamped at
// zero. ok is false when either date is missing.
func lengthOfStay(c model.Claim) (days float64, ok bool) {
	if c.AdmissionDate == nil || c.DischargeDate == nil {
		return 0, false
	}
	d := math.Floor(c.DischargeDate.Sub(*c.AdmissionDate).Hours() / 24)
	if d < 0 {
		d = 0
	}
	return d, true
}

func avgLengthOfStay(claims []model.Claim) float64 {
	var sum float64
	var n int
	for _, c := range claims {
		if d, ok := lengthOfStay(c); ok {
			sum += d
			n++
		}
	}
	if n == 0 {
		return defaultLengthOfStay
	}
	return sum / float64(n)
}

// avgDaysToPayment averages claim DaysToPayment over claims where it is
// positive, falling back to the average length of stay, then to the global
// default when that is also zero.
func avgDaysToPayment(claims []model.Claim, lengthOfStay float64) float64 {
	var sum float64
	var n int
	for _, c := range claims {
		if c.DaysToPayment > 0 {
			sum += c.DaysToPayment
			n++
		}
	}
	if n > 0 {
		return sum / float64(n)
	}
	if lengthOfStay != 0 {
		return lengthOfStay
	}
	return defaultDaysToPayment
}

func admissionBounds(rows []model.NormalizedRecord) (minDate, maxDate *time.Time) {
	for _, r := range rows {
		d := r.AdmissionDate
		if d == nil {
			continue
		}
		if minDate == nil || d.Before(*minDate) {
			minDate = d
		}
		if maxDate == nil || d.After(*maxDate) {
			maxDate = d
		}
	}
	return minDate, maxDate
}

// monthsSpan is the admission-date span in 30-day months, at least 1, or
// the 12-month default when no dates exist at all.
func monthsSpan(minDate, maxDate *time.Time) int {
	if minDate == nil || maxDate == nil {
		return defaultMonthsSpan
	}
	days := maxDate.Sub(*minDate).Hours() / 24
	span := int(math.Ceil(days / 30))
	if span < 1 {
		return 1
	}
	return span
}

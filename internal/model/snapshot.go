package model

import "time"

// ValidationResult is the validation outcome handed to report consumers.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// DenialReason is one entry of the illustrative denial-reason breakdown.
type DenialReason struct {
	Reason     string  `json:"reason"`
	Percentage float64 `json:"percentage"`
}

// MetricsSnapshot is the computed KPI bag for one analysis run. Field names
// are the output contract: the downstream renderer binds to them directly.
//
// Counts, claim-level sums, and rates are computed over aggregated claims.
// TotalPaidAmount, RejectedClaimsAmount, ApprovedUnpaidAmount, and
// RevenueStuckInQuery are deliberately computed over the raw rows instead;
// the two granularities diverge whenever a claim mixes component rows with
// different statuses, and both views are part of the contract.
type MetricsSnapshot struct {
	TotalClaims    int `json:"totalClaims"`
	PaidClaims     int `json:"paidClaims"`
	ApprovedClaims int `json:"approvedClaims"`
	PendingClaims  int `json:"pendingClaims"`
	RejectedClaims int `json:"rejectedClaims"`

	TotalClaimValue     float64 `json:"totalClaimValue"`
	TotalApprovedAmount float64 `json:"totalApprovedAmount"`

	// Row-granularity sums.
	TotalPaidAmount      float64 `json:"totalPaidAmount"`
	RejectedClaimsAmount float64 `json:"rejectedClaimsAmount"`
	ApprovedUnpaidAmount float64 `json:"approvedUnpaidAmount"`
	RevenueStuckInQuery  float64 `json:"revenueStuckInQuery"`

	DenialRate                float64 `json:"denialRate"`
	QueryIncidence            float64 `json:"queryIncidence"`
	FirstPassRate             float64 `json:"firstPassRate"`
	CollectionEfficiency      float64 `json:"collectionEfficiency"`
	RevenueLeakageRate        float64 `json:"revenueLeakageRate"`
	HighValueClaimsPercentage float64 `json:"highValueClaimsPercentage"`

	AverageClaimAmount float64 `json:"averageClaimAmount"`
	AvgLengthOfStay    float64 `json:"avgLengthOfStay"`
	AvgDaysToPayment   float64 `json:"avgDaysToPayment"`

	MinDate    *time.Time `json:"minDate,omitempty"`
	MaxDate    *time.Time `json:"maxDate,omitempty"`
	MonthsSpan int        `json:"monthsSpan"`

	HealthScore float64 `json:"healthScore"`

	DenialReasons []DenialReason `json:"denialReasons"`
}

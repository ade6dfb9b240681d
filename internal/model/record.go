package model

import "time"

// Column names expected in claim export files. Readers surface cells under
// these exact keys; aggregation validates the required subset against them.
const (
	ColTID            = "TID"
	ColPatientName    = "Patient Name"
	ColHospitalName   = "Hospital Name"
	ColStatus         = "Status"
	ColPkgCode        = "Pkg Code"
	ColPkgName        = "Pkg Name"
	ColPkgRate        = "Pkg Rate"
	ColApprovedAmount = "Approved Amount"
	ColQueryRaised    = "Query Raised"
	ColAdmissionDate  = "Date of Admission"
	ColDischargeDate  = "Date of Discharge"
	ColPaymentDate    = "Payment Date"
	ColDaysToPayment  = "Days to Payment"
)

// RequiredColumns is the minimal column set a claim export must carry.
var RequiredColumns = []string{
	ColTID,
	ColPatientName,
	ColHospitalName,
	ColStatus,
	ColPkgRate,
	ColApprovedAmount,
}

// RawRecord is one row of a claim export as read from the source file.
// A column that is absent from the file has no key at all, which is what
// required-column validation checks; an empty cell is an empty string.
type RawRecord map[string]string

// Has reports whether the column exists on the record, empty or not.
func (r RawRecord) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// NormalizedRecord is a RawRecord with money and date fields coerced to
// typed values. Coercion never fails: malformed numbers become 0 and
// malformed dates become nil. The originating RawRecord is retained so
// column presence survives normalization.
type NormalizedRecord struct {
	Raw RawRecord

	TID          string
	PatientName  string
	HospitalName string
	Status       string
	PkgCode      string
	PkgName      string

	PkgRate        float64
	ApprovedAmount float64
	QueryRaised    float64

	AdmissionDate *time.Time
	DischargeDate *time.Time
	PaymentDate   *time.Time

	// Derived during normalization.
	DaysToPayment    float64
	ActualPaidAmount float64
}

// ComponentRecord is the per-row package detail retained inside a Claim.
type ComponentRecord struct {
	PkgCode        string  `json:"pkgCode"`
	PkgName        string  `json:"pkgName"`
	PkgRate        float64 `json:"pkgRate"`
	ApprovedAmount float64 `json:"approvedAmount"`
}

// Claim is the aggregated entity for one TID. Financial fields are summed
// across the claim's rows; QueryRaised and DaysToPayment take the running
// maximum. Descriptive fields come from the first row seen for the TID.
type Claim struct {
	TID          string `json:"tid"`
	PatientName  string `json:"patientName"`
	HospitalName string `json:"hospitalName"`
	Status       string `json:"status"`

	AdmissionDate *time.Time `json:"admissionDate,omitempty"`
	DischargeDate *time.Time `json:"dischargeDate,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`

	PkgRate          float64 `json:"pkgRate"`
	ApprovedAmount   float64 `json:"approvedAmount"`
	ActualPaidAmount float64 `json:"actualPaidAmount"`

	QueryRaised   float64 `json:"queryRaised"`
	DaysToPayment float64 `json:"daysToPayment"`

	Components []ComponentRecord `json:"components"`
}

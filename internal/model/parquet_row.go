package model

// ClaimExportRow mirrors the Parquet schema of a claim export. Every column
// is optional text, matching the spreadsheet exports the same data comes
// from; typed coercion happens later in normalization, not at read time.
type ClaimExportRow struct {
	TID            *string `parquet:"tid,optional"`
	PatientName    *string `parquet:"patient_name,optional"`
	HospitalName   *string `parquet:"hospital_name,optional"`
	Status         *string `parquet:"status,optional"`
	PkgCode        *string `parquet:"pkg_code,optional"`
	PkgName        *string `parquet:"pkg_name,optional"`
	PkgRate        *string `parquet:"pkg_rate,optional"`
	ApprovedAmount *string `parquet:"approved_amount,optional"`
	QueryRaised    *string `parquet:"query_raised,optional"`
	AdmissionDate  *string `parquet:"date_of_admission,optional"`
	DischargeDate  *string `parquet:"date_of_discharge,optional"`
	PaymentDate    *string `parquet:"payment_date,optional"`
	DaysToPayment  *string `parquet:"days_to_payment,optional"`
}

// ToRawRecord converts the row to a RawRecord. Nil columns are left out of
// the map entirely so required-column validation sees them as absent.
func (r *ClaimExportRow) ToRawRecord() RawRecord {
	rec := make(RawRecord, 13)
	put := func(col string, v *string) {
		if v != nil {
			rec[col] = *v
		}
	}
	put(ColTID, r.TID)
	put(ColPatientName, r.PatientName)
	put(ColHospitalName, r.HospitalName)
	put(ColStatus, r.Status)
	put(ColPkgCode, r.PkgCode)
	put(ColPkgName, r.PkgName)
	put(ColPkgRate, r.PkgRate)
	put(ColApprovedAmount, r.ApprovedAmount)
	put(ColQueryRaised, r.QueryRaised)
	put(ColAdmissionDate, r.AdmissionDate)
	put(ColDischargeDate, r.DischargeDate)
	put(ColPaymentDate, r.PaymentDate)
	put(ColDaysToPayment, r.DaysToPayment)
	return rec
}

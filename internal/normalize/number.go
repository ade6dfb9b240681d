package normalize

import (
	"strconv"
	"strings"
)

// cleanNumeric strips every character outside [0-9.-] so that currency
// symbols and grouping separators ("₹1,23,456.00") drop away.
func cleanNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseNumber extracts a float64 amount from free-form cell text.
// Empty, non-numeric, or unparseable input yields 0; it never fails.
func ParseNumber(s string) float64 {
	cleaned := cleanNumeric(s)
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsNumeric reports whether the cell text carries a parseable number after
// cleaning. Distinguishes an explicit "0" from text that merely degrades
// to 0 through ParseNumber.
func IsNumeric(s string) bool {
	cleaned := cleanNumeric(s)
	if cleaned == "" {
		return false
	}
	_, err := strconv.ParseFloat(cleaned, 64)
	return err == nil
}

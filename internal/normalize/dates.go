package normalize

import (
	"regexp"
	"strings"
	"time"
)

// localeDate matches the "<day>,<MonthName> , <Year> [<time>]" form that the
// claim exports use, e.g. "17,February , 2025 12:00 AM". The time part is
// optional and defaults to midnight.
var localeDate = regexp.MustCompile(`^(\d{1,2})\s*,\s*([A-Za-z]+)\s*,\s*(\d{4})(?:\s+(.+))?$`)

var localeLayouts = []string{
	"2 January 2006 3:04 PM",
	"2 January 2006 3:04:05 PM",
	"2 Jan 2006 3:04 PM",
	"2 January 2006 15:04",
}

// Common date formats found in claim export files.
var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"01-02-2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate attempts the export's locale pattern first, then the generic
// format list. Returns nil if the input is empty or unparseable; it never
// fails.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if m := localeDate.FindStringSubmatch(s); m != nil {
		clock := strings.TrimSpace(m[4])
		if clock == "" {
			clock = "00:00 AM"
		}
		candidate := m[1] + " " + m[2] + " " + m[3] + " " + clock
		for _, layout := range localeLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return &t
			}
		}
	}

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

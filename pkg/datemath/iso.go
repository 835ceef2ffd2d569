package datemath

import "time"

// DateFormatISO is the calendar date layout used for task dates.
const DateFormatISO = "2006-01-02"

// FormatISO formats t as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(DateFormatISO)
}

// ParseISO parses a YYYY-MM-DD string in the given location.
func ParseISO(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateFormatISO, s, loc)
}

package utils

import "time"

// DateOnly truncates t to midnight in the local timezone. Ledger day
// boundaries are calendar days in the device's zone, not UTC.
func DateOnly(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// IsYesterday reports whether candidate is exactly one calendar day before today.
func IsYesterday(candidate, today time.Time) bool {
	return DateOnly(candidate).Equal(DateOnly(today).AddDate(0, 0, -1))
}

// FormatDate renders a date as YYYY-MM-DD, the wire format for all date fields.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate parses a YYYY-MM-DD string into a local-midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

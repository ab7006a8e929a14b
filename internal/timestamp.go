package internal

import (
	"time"

	"gorm.io/datatypes"
)

// Layouts accepted on the wire. They match the datetime validator tags used by payloads.
const (
	TimestampLayout = time.RFC3339
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04:05"
)

// ParseTimestamp parses an RFC3339 datetime and normalizes it to UTC
func ParseTimestamp(field string, value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, WrapErrorf(err, ErrorCodeInvalidArgument, "%s must be an RFC3339 datetime", field)
	}
	return t.UTC(), nil
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(field string, value string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return datatypes.Date{}, WrapErrorf(err, ErrorCodeInvalidArgument, "%s must be a date formatted as YYYY-MM-DD", field)
	}
	return datatypes.Date(t), nil
}

// ParseClock parses an HH:MM:SS time of day
func ParseClock(field string, value string) (datatypes.Time, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, WrapErrorf(err, ErrorCodeInvalidArgument, "%s must be a time formatted as HH:MM:SS", field)
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
}

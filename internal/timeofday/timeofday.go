package timeofday

import (
	"time"
)

// Schedule times are written as local wall-clock time with an optional
// offset ("06:35:00-07:00"). Full timestamps are accepted too.
var departureFormats = []string{
	"15:04:05Z07:00",
	"15:04:05-0700", // Without colon
	"15:04:05",
	"15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// MinuteOfDay returns the wall-clock minute of a departure time. The offset,
// when present, is not applied: a 06:35 departure stays 06:35 whatever the
// airport's zone.
func MinuteOfDay(s string) (int, error) {
	for _, format := range departureFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}

	return 0, &time.ParseError{
		Value:   s,
		Message: "unable to parse departure time",
	}
}

// ParseClock parses an HH:MM filter bound into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

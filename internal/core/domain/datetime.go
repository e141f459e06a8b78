package domain

import (
	"regexp"
	"time"
)

// ISOLayout is the wire format for every instant: UTC with milliseconds.
const ISOLayout = "2006-01-02T15:04:05.000Z"

var isoInstant = regexp.MustCompile(`^\d{4}-[01]\d-[0-3]\d[T][0-2]\d:[0-5]\d:[0-5]\d\.\d{3}Z$`)

// ParseInstant accepts any RFC 3339 instant. The empty string is reported as
// not ok.
func ParseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func FormatInstant(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// IsISOInstant reports whether s is written as YYYY-MM-DDThh:mm:ss.sssZ and
// denotes a real instant.
func IsISOInstant(s string) bool {
	if !isoInstant.MatchString(s) {
		return false
	}
	_, ok := ParseInstant(s)
	return ok
}

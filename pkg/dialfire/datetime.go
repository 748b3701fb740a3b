package dialfire

import (
	"fmt"
	"strings"
	"time"
)

// Dialfire datetime strings carry exactly three fractional digits on the wire,
// e.g. "2024-05-10T01:02:03.127Z". Parsing accepts finer precision on input;
// formatting truncates to milliseconds and never rounds.
const (
	dateTimeFormatOut = "2006-01-02T15:04:05.000"
	dateTimeFormatIn  = "2006-01-02T15:04:05.999999999"
)

// FormatTime converts a time value to a Dialfire datetime string.
// Sub-millisecond precision is dropped, not rounded.
func FormatTime(t time.Time) string {
	return t.Format(dateTimeFormatOut) + "Z"
}

// ParseTime converts a Dialfire datetime string to a time value. A trailing
// "Z" is stripped before parsing. Returns an error wrapping ErrInvalidDateTime
// when the string is empty or does not match the Dialfire format.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDateTime)
	}

	parsed, err := time.Parse(dateTimeFormatIn, strings.TrimSuffix(s, "Z"))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}

	return parsed, nil
}

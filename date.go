package visaletter

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted form for date fields in the input YAML.
const DateLayout = "2006-01-02"

// ParseDate validates a YYYY-MM-DD date field. An empty value reports
// ErrMissingField, any other layout reports ErrInvalidDate; both name the
// offending field.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q (want YYYY-MM-DD)", ErrInvalidDate, field, value)
	}
	return t, nil
}

// formatShort renders a date the way the letter body cites applicant dates.
func formatShort(t time.Time) string {
	return t.Format("02/01/2006")
}

// formatLong renders a date the way the letterhead cites the letter date.
func formatLong(t time.Time) string {
	return t.Format("January 2, 2006")
}

// formatRange renders the conference dates as a single human-readable span.
func formatRange(from, to time.Time) string {
	if from.Equal(to) {
		return formatLong(from)
	}
	if from.Year() == to.Year() {
		return from.Format("January 2") + " to " + formatLong(to)
	}
	return formatLong(from) + " to " + formatLong(to)
}

package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/domain"
)

// DayLayout is the calendar-day format sent to the flights API.
const DayLayout = time.DateOnly

// acceptedDateLayouts lists the raw input formats accepted for dates, in
// the order they are tried.
var acceptedDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDay parses raw into a calendar-day string (YYYY-MM-DD). Inputs that
// carry a time of day are normalized to UTC before the time is dropped.
// Unparseable input returns a *domain.ValidationError wrapping
// domain.ErrInvalidDate for the given field.
func ParseDay(field, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", invalidDate(field, domain.MsgRequired)
	}

	for _, layout := range acceptedDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC().Format(DayLayout), nil
		}
	}

	return "", invalidDate(field, fmt.Sprintf("invalid date: %q", raw))
}

func invalidDate(field, msg string) error {
	return &domain.ValidationError{
		Fields: map[string]string{field: msg},
		Cause:  domain.ErrInvalidDate,
	}
}

package utils

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date representation. Stored dates
// use it so that lexical and chronological order agree.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseCalendarDate keeps the calendar date as written in value, without
// shifting it to another time zone.
func ParseCalendarDate(value string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("unsupported date format '%s'", value)
}

func IsCanonicalDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(DateLayout)
}

package utils

import (
	"database/sql/driver"
	"fmt"
	"time"
)

type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	formatted := t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	return []byte(`"` + formatted + `"`), nil
}

func (t Time) Value() (driver.Value, error) {
	return t.Time, nil
}

func (t *Time) Scan(src any) error {
	switch val := src.(type) {
	case time.Time:
		t.Time = val
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, val)
		if err != nil {
			return fmt.Errorf("parsing time: %w", err)
		}
		t.Time = parsed
	case nil:
		t.Time = time.Time{}
	default:
		return fmt.Errorf("invalid type for time: %T", src)
	}
	return nil
}

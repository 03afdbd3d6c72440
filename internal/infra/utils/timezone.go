package utils

import (
	"fmt"
	"time"
)

// ValidateTimezone validates that the given timezone string is a valid IANA timezone name
func ValidateTimezone(timezone string) error {
	if timezone == "" {
		return fmt.Errorf("timezone cannot be empty")
	}

	_, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", timezone, err)
	}

	return nil
}

// IsValidTimezone checks if the given timezone string is a valid IANA timezone name
func IsValidTimezone(timezone string) bool {
	return ValidateTimezone(timezone) == nil
}

// LocationOrLocal resolves timezone, falling back to the process local zone
// when it is empty or unknown.
func LocationOrLocal(timezone string) *time.Location {
	if timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

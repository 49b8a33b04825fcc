package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used throughout the store.
const DateLayout = "2006-01-02"

func requiredFieldError(field string) error {
	return fmt.Errorf("missing required field %s", field)
}

func invalidFieldError(field string, value any) error {
	return fmt.Errorf("invalid value %v for field %s", value, field)
}

func oneOf(value string, allowed ...string) bool {
	for _, candidate := range allowed {
		if value == candidate {
			return true
		}
	}
	return false
}

// isValidDateString accepts a plain calendar date or an RFC 3339
// datetime, the two forms the original records carry.
func isValidDateString(value string) bool {
	if _, err := time.Parse(DateLayout, value); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return true
	}
	return false
}

package services

import (
	"time"
)

const dateLayout = "2006-01-02"

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validTime(s string) bool {
	if _, err := time.Parse("15:04:05", s); err == nil {
		return true
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// checkDate validates an optional ISO date field.
func checkDate(name, value string) error {
	if value != "" && !validDate(value) {
		return invalid("%s must be a date in YYYY-MM-DD format", name)
	}
	return nil
}

func checkDatePtr(name string, value *string) error {
	if value == nil {
		return nil
	}
	return checkDate(name, *value)
}

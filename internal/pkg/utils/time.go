package utils

import (
	"strings"
	"time"

	"mna-assessment-service/internal/pkg/constvars"
)

// ParseDateOfBirth parses a YYYY-MM-DD date. An empty value returns nil.
func ParseDateOfBirth(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	dob, err := time.Parse(constvars.DateOfBirthLayout, value)
	if err != nil {
		return nil, err
	}
	return &dob, nil
}

// IsFutureDate reports whether the calendar day of t comes after the
// calendar day of now.
func IsFutureDate(t, now time.Time) bool {
	return t.Format(constvars.DateOfBirthLayout) > now.Format(constvars.DateOfBirthLayout)
}

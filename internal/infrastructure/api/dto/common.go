// Package dto holds the backend wire schema and the pure conversions between
// wire records and the dashboard models.
//
// FromWire functions fail only on tokens outside the known enumerations;
// ToWire and PatchToWire functions fail with a validation error before
// anything is sent.
package dto

import (
	"fmt"
	"strconv"
	"time"

	"recyclehub/internal/core/apperror"
)

// ErrorBody is the error payload returned by the backend on non-2xx responses.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Ref is the snapshot of a related record nested in collections and sales.
type Ref struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Unit  string `json:"unit,omitempty"`
}

func refName(r *Ref) string {
	if r == nil {
		return ""
	}
	return r.Name
}

// FormatID renders a wire identifier for the dashboard.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID parses a dashboard identifier into its wire form.
func ParseID(field, id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n < 0 {
		return 0, apperror.NewValidation(field+" must be an integer identifier").
			WithDetail("field", field).
			WithDetail("value", id)
	}
	return n, nil
}

func parseIDPtr(field string, id *string) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	n, err := ParseID(field, *id)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// --- Timestamps ---

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// SplitDateTime splits a wire instant into a UTC calendar day and HH:MM.
func SplitDateTime(dateTime string) (date, clock string, err error) {
	t, err := time.Parse(time.RFC3339Nano, dateTime)
	if err != nil {
		return "", "", fmt.Errorf("parse dateTime %q: %w", dateTime, err)
	}
	t = t.UTC()
	return t.Format(dateLayout), t.Format(timeLayout), nil
}

// JoinDateTime rebuilds the wire instant from a UTC day and HH:MM.
func JoinDateTime(date, clock string) (string, error) {
	t, err := time.ParseInLocation(dateLayout+"T"+timeLayout, date+"T"+clock, time.UTC)
	if err != nil {
		return "", apperror.NewValidation("date and time must be YYYY-MM-DD and HH:MM").
			WithDetail("field", "dateTime").
			WithDetail("value", date+" "+clock)
	}
	return t.Format(time.RFC3339), nil
}

// NoonOf expands a calendar day into the wire instant at 12:00 UTC.
func NoonOf(date string) (string, error) {
	t, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return "", apperror.NewValidation("date must be YYYY-MM-DD").
			WithDetail("field", "date").
			WithDetail("value", date)
	}
	return t.Add(12 * time.Hour).Format(time.RFC3339), nil
}

// DateOf returns the UTC calendar day of a wire instant.
func DateOf(dateTime string) (string, error) {
	date, _, err := SplitDateTime(dateTime)
	return date, err
}

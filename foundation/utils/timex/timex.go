// File: timex.go
// Title: Core Time Utility Functions
// Description: Implements date parsing and day-boundary helpers for
//              statement filtering. Accepts the date formats users
//              typically type on the command line and normalizes them
//              for inclusive range queries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with core utilities

package timex

import (
	"fmt"
	"time"
)

// Common date formats accepted on the command line
const (
	ISODate     = "2006-01-02"
	CompactDate = "20060102"
	DisplayDate = "02.01.2006"
)

// ParseDate parses a date string without a time component
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	formats := []string{
		ISODate,
		CompactDate,
		DisplayDate,
		"2006-1-2",
		"2.1.2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date string: %s", value)
}

// StartOfDay returns the time at 00:00:00 of the given day
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of the given day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight on the first day of the month
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of the month
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// TimeRange represents a time interval with inclusive bounds
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Contains checks if the given time falls within the range
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.Start) && !t.After(tr.End)
}

// String returns a human-readable representation of the range
func (tr TimeRange) String() string {
	return fmt.Sprintf("%s - %s", tr.Start.Format(ISODate), tr.End.Format(ISODate))
}

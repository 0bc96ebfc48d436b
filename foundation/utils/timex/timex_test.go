// File: timex_test.go
// Title: Tests for Time Utilities
// Description: Tests date parsing and day-boundary helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial tests

package timex

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"iso", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"iso short", "2024-3-5", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"compact", "20240315", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"display", "15.03.2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"display short", "5.3.2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "not-a-date", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDayBoundaries(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 45, 123, time.UTC)

	start := StartOfDay(ref)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay returned %v", start)
	}

	end := EndOfDay(ref)
	if end.Day() != 15 || end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("EndOfDay returned %v", end)
	}
	if !end.Before(start.AddDate(0, 0, 1)) {
		t.Errorf("EndOfDay %v crosses into the next day", end)
	}
}

func TestMonthBoundaries(t *testing.T) {
	ref := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

	if got := StartOfMonth(ref); got.Day() != 1 || got.Month() != 2 {
		t.Errorf("StartOfMonth returned %v", got)
	}

	// February 2024 is a leap month
	if got := EndOfMonth(ref); got.Day() != 29 {
		t.Errorf("EndOfMonth returned %v, expected Feb 29", got)
	}
}

func TestTimeRangeContains(t *testing.T) {
	tr := TimeRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
	}

	if !tr.Contains(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("expected mid-month time to be contained")
	}
	if !tr.Contains(tr.Start) || !tr.Contains(tr.End) {
		t.Error("expected bounds to be inclusive")
	}
	if tr.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected time after range to be excluded")
	}
}

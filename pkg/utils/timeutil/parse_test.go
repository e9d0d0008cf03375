package timeutil

import (
	"testing"
	"time"
)

func TestParseFlexible(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2023-01-15T09:00:00Z", true},
		{"Mon, 02 Jan 2023 15:04:05 GMT", true},
		{"2023-01-15", true},
		{"", false},
		{"not a date", false},
	}

	for _, tt := range tests {
		got := ParseFlexible(tt.input)
		if got.IsZero() == tt.valid {
			t.Errorf("ParseFlexible(%q).IsZero() = %v, want %v", tt.input, got.IsZero(), !tt.valid)
		}
	}
}

func TestParseFlexible_Ordering(t *testing.T) {
	start := ParseFlexible("2023-01-15T09:00:00Z")
	end := ParseFlexible("2023-01-15T11:00:00Z")
	if !end.After(start) {
		t.Error("end should be after start")
	}
	if end.Sub(start) != 2*time.Hour {
		t.Errorf("difference = %v, want 2h", end.Sub(start))
	}
}

func TestFormatDisplay(t *testing.T) {
	if got := FormatDisplay(""); got != "Unknown" {
		t.Errorf("FormatDisplay(\"\") = %q, want Unknown", got)
	}
	if got := FormatDisplay("garbage"); got != "Invalid Date" {
		t.Errorf("FormatDisplay(garbage) = %q, want Invalid Date", got)
	}
	if got := FormatDisplay("2023-01-15T09:05:00Z"); got != "1/15/2023 9:05:00 AM" {
		t.Errorf("FormatDisplay = %q", got)
	}
}

package bookkeeping

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in       string
		expected Date
		wantErr  bool
	}{
		{in: "2024-01-02", expected: NewDate(2024, time.January, 2)},
		{in: "2024-1-2", expected: NewDate(2024, time.January, 2)},
		{in: "2024/01/02", expected: NewDate(2024, time.January, 2)},
		{in: "02-01-2024", wantErr: true},
		{in: "not a date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) did not fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.in, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestDate_ordering(t *testing.T) {
	a, b := D("2024-01-02"), D("2024-01-03")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() inconsistent for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() inconsistent for %v and %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date compares against itself")
	}
}

func TestDate_Add_normalizes(t *testing.T) {
	if got := D("2024-01-31").Add(1); got != D("2024-02-01") {
		t.Errorf("Add(1) = %v, want 2024-02-01", got)
	}
	if got := D("2024-03-01").Add(-1); got != D("2024-02-29") {
		t.Errorf("Add(-1) = %v, want the leap day", got)
	}
}

func TestDate_String(t *testing.T) {
	if got := NewDate(2024, time.January, 2).String(); got != "2024-01-02" {
		t.Errorf("String() = %q", got)
	}
	var zero Date
	if !zero.IsZero() {
		t.Errorf("zero Date is not IsZero")
	}
}

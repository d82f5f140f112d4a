package domain

import (
	"testing"
	"time"
)

func TestMonth_NumDays(t *testing.T) {
	tests := []struct {
		month Month
		want  int
	}{
		{Month{2024, time.February}, 29},
		{Month{2025, time.February}, 28},
		{Month{2000, time.February}, 29},
		{Month{1900, time.February}, 28},
		{Month{2025, time.January}, 31},
		{Month{2025, time.April}, 30},
	}
	for _, tt := range tests {
		if got := tt.month.NumDays(); got != tt.want {
			t.Errorf("%s NumDays: expected %d, got %d", tt.month, tt.want, got)
		}
	}
}

func TestMonth_FirstLast(t *testing.T) {
	m := Month{2024, time.February}
	if got := m.First().String(); got != "2024-02-01" {
		t.Errorf("First: expected 2024-02-01, got %s", got)
	}
	if got := m.Last().String(); got != "2024-02-29" {
		t.Errorf("Last: expected 2024-02-29, got %s", got)
	}
}

func TestMonth_NextPrev_YearBoundary(t *testing.T) {
	dec := Month{2024, time.December}
	jan := Month{2025, time.January}
	if got := dec.Next(); got != jan {
		t.Errorf("Next: expected %v, got %v", jan, got)
	}
	if got := jan.Prev(); got != dec {
		t.Errorf("Prev: expected %v, got %v", dec, got)
	}
}

func TestMonth_String(t *testing.T) {
	m := Month{2025, time.January}
	if got := m.String(); got != "2025/January" {
		t.Errorf("expected 2025/January, got %s", got)
	}
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		date string
		want Week
	}{
		{"2025-01-06", Week{2025, 2}},
		{"2025-01-01", Week{2025, 1}},
		// ISO week years differ from calendar years at the boundary.
		{"2021-01-01", Week{2020, 53}},
		{"2024-12-30", Week{2025, 1}},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", tt.date, err)
		}
		if got := WeekOf(d); got != tt.want {
			t.Errorf("WeekOf(%s): expected %v, got %v", tt.date, tt.want, got)
		}
	}
}

func TestWeek_FirstLast(t *testing.T) {
	w := Week{2025, 2}
	if got := w.First().String(); got != "2025-01-06" {
		t.Errorf("First: expected 2025-01-06, got %s", got)
	}
	if got := w.First().Weekday(); got != time.Monday {
		t.Errorf("First should be a Monday, got %s", got)
	}
	if got := w.Last().String(); got != "2025-01-12" {
		t.Errorf("Last: expected 2025-01-12, got %s", got)
	}
}

func TestWeek_NextPrev_53WeekYear(t *testing.T) {
	// 2020 has 53 ISO weeks.
	last := Week{2020, 53}
	first := Week{2021, 1}
	if got := last.Next(); got != first {
		t.Errorf("Next: expected %v, got %v", first, got)
	}
	if got := first.Prev(); got != last {
		t.Errorf("Prev: expected %v, got %v", last, got)
	}
}

func TestWeek_String(t *testing.T) {
	w := Week{2025, 2}
	if got := w.String(); got != "2025/Week 02" {
		t.Errorf("expected 2025/Week 02, got %s", got)
	}
}

func TestYear(t *testing.T) {
	y := Year(2025)
	if got := y.First(); got != (Month{2025, time.January}) {
		t.Errorf("First: expected January, got %v", got)
	}
	if got := y.Last(); got != (Month{2025, time.December}) {
		t.Errorf("Last: expected December, got %v", got)
	}
	if got := y.Next(); got != Year(2026) {
		t.Errorf("Next: expected 2026, got %v", got)
	}
	if got := y.Prev(); got != Year(2024) {
		t.Errorf("Prev: expected 2024, got %v", got)
	}
	if got := y.String(); got != "2025" {
		t.Errorf("String: expected 2025, got %s", got)
	}
}

package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-12")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	want := Date{Year: 2025, Month: time.January, Day: 12}
	if d != want {
		t.Errorf("expected %v, got %v", want, d)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "2025-13-01", "2025-02-30", "12/01/2025", "tomorrow"} {
		if _, err := ParseDate(raw); err == nil {
			t.Errorf("ParseDate(%q) should fail", raw)
		}
	}
}

func TestDate_String(t *testing.T) {
	d := Date{Year: 2025, Month: time.March, Day: 4}
	if got := d.String(); got != "2025-03-04" {
		t.Errorf("expected 2025-03-04, got %s", got)
	}
}

func TestDate_NextPrev(t *testing.T) {
	tests := []struct {
		date string
		next string
	}{
		{"2025-01-12", "2025-01-13"},
		{"2025-01-31", "2025-02-01"},
		{"2024-02-28", "2024-02-29"},
		{"2025-02-28", "2025-03-01"},
		{"2025-12-31", "2026-01-01"},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", tt.date, err)
		}
		if got := d.Next().String(); got != tt.next {
			t.Errorf("%s Next: expected %s, got %s", tt.date, tt.next, got)
		}
		n, err := ParseDate(tt.next)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", tt.next, err)
		}
		if got := n.Prev().String(); got != tt.date {
			t.Errorf("%s Prev: expected %s, got %s", tt.next, tt.date, got)
		}
	}
}

func TestDate_YearDay(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-01-01", 1},
		{"2026-02-01", 32},
		{"2024-12-31", 366},
		{"2025-12-31", 365},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", tt.date, err)
		}
		if got := d.YearDay(); got != tt.want {
			t.Errorf("%s YearDay: expected %d, got %d", tt.date, tt.want, got)
		}
	}
}

func TestNewMonthday_Bounds(t *testing.T) {
	for _, n := range []int{1, 15, 31} {
		if _, err := NewMonthday(n); err != nil {
			t.Errorf("NewMonthday(%d) should succeed: %v", n, err)
		}
	}
	for _, n := range []int{0, -1, 32, 100} {
		_, err := NewMonthday(n)
		if err == nil {
			t.Errorf("NewMonthday(%d) should fail", n)
			continue
		}
		if !errors.Is(err, ErrInvalidMonthday) {
			t.Errorf("NewMonthday(%d): expected ErrInvalidMonthday, got %v", n, err)
		}
	}
}

func TestNewYearday_Bounds(t *testing.T) {
	for _, n := range []int{1, 60, 366} {
		if _, err := NewYearday(n); err != nil {
			t.Errorf("NewYearday(%d) should succeed: %v", n, err)
		}
	}
	for _, n := range []int{0, -5, 367} {
		_, err := NewYearday(n)
		if err == nil {
			t.Errorf("NewYearday(%d) should fail", n)
			continue
		}
		if !errors.Is(err, ErrInvalidYearday) {
			t.Errorf("NewYearday(%d): expected ErrInvalidYearday, got %v", n, err)
		}
	}
}

func TestDateRange_Contains(t *testing.T) {
	from := Date{Year: 2025, Month: time.March, Day: 1}
	to := Date{Year: 2025, Month: time.March, Day: 31}
	inside := Date{Year: 2025, Month: time.March, Day: 15}
	before := Date{Year: 2025, Month: time.February, Day: 28}
	after := Date{Year: 2025, Month: time.April, Day: 1}

	tests := []struct {
		name string
		r    DateRange
		date Date
		want bool
	}{
		{"unbounded contains everything", DateRange{}, inside, true},
		{"inside both bounds", DateRange{From: &from, To: &to}, inside, true},
		{"bounds are inclusive low", DateRange{From: &from, To: &to}, from, true},
		{"bounds are inclusive high", DateRange{From: &from, To: &to}, to, true},
		{"before from", DateRange{From: &from}, before, false},
		{"after to", DateRange{To: &to}, after, false},
		{"from only, later ok", DateRange{From: &from}, after, true},
		{"to only, earlier ok", DateRange{To: &to}, before, true},
	}
	for _, tt := range tests {
		if got := tt.r.Contains(tt.date); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

package domain

import (
	"errors"
	"fmt"
	"time"
)

// Date is a calendar date without time-of-day or timezone,
// in the proleptic Gregorian calendar.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components. Out-of-range components
// are normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current date in local time.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses an ISO date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the date at midnight UTC, for arithmetic.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// YearDay returns the 1-based day of the year (1-365, 366 in leap years).
func (d Date) YearDay() int {
	return d.Time().YearDay()
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Next returns the following day.
func (d Date) Next() Date { return d.AddDays(1) }

// Prev returns the preceding day.
func (d Date) Prev() Date { return d.AddDays(-1) }

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// String returns the page identity of the day, e.g. "2025-01-12".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

var (
	// ErrInvalidMonthday reports a day-of-month outside [1,31].
	ErrInvalidMonthday = errors.New("invalid month day")

	// ErrInvalidYearday reports a day-of-year outside [1,366].
	ErrInvalidYearday = errors.New("invalid year day")
)

// Monthday is a validated 1-based day of the month.
// A value outside [1,31] cannot exist past construction.
type Monthday int

// NewMonthday validates a day-of-month value.
func NewMonthday(n int) (Monthday, error) {
	if n < 1 || n > 31 {
		return 0, fmt.Errorf("%w %d", ErrInvalidMonthday, n)
	}
	return Monthday(n), nil
}

// Yearday is a validated 1-based day of the year.
// A value outside [1,366] cannot exist past construction.
type Yearday int

// NewYearday validates a day-of-year value.
func NewYearday(n int) (Yearday, error) {
	if n < 1 || n > 366 {
		return 0, fmt.Errorf("%w %d", ErrInvalidYearday, n)
	}
	return Yearday(n), nil
}

// DateRange is a date interval with optional bounds,
// inclusive on both sides when present.
type DateRange struct {
	From *Date
	To   *Date
}

// Contains reports whether the date falls within the range.
// An absent bound is unbounded on that side.
func (r DateRange) Contains(d Date) bool {
	if r.From != nil && d.Before(*r.From) {
		return false
	}
	if r.To != nil && d.After(*r.To) {
		return false
	}
	return true
}

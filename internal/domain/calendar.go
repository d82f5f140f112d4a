package domain

import (
	"fmt"
	"time"
)

// Month is a calendar month of a specific year.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing the date.
func MonthOf(d Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// NumDays returns the number of days in the month, leap-aware.
func (m Month) NumDays() int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// First returns the first day of the month.
func (m Month) First() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// Last returns the last day of the month.
func (m Month) Last() Date {
	return Date{Year: m.Year, Month: m.Month, Day: m.NumDays()}
}

// Next returns the following month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// String returns the page identity of the month, e.g. "2025/January".
func (m Month) String() string {
	return fmt.Sprintf("%04d/%s", m.Year, m.Month)
}

// Week is an ISO-8601 week of a specific week-based year.
type Week struct {
	Year int
	Num  int
}

// WeekOf returns the ISO week containing the date. The week's year is
// the ISO week-based year, which can differ from the date's calendar
// year around January 1st.
func WeekOf(d Date) Week {
	year, num := d.Time().ISOWeek()
	return Week{Year: year, Num: num}
}

// First returns the Monday of the week.
func (w Week) First() Date {
	// January 4th is always in ISO week 1.
	jan4 := Date{Year: w.Year, Month: time.January, Day: 4}
	daysFromMonday := (int(jan4.Weekday()) + 6) % 7
	week1Monday := jan4.AddDays(-daysFromMonday)
	return week1Monday.AddDays((w.Num - 1) * 7)
}

// Last returns the Sunday of the week.
func (w Week) Last() Date {
	return w.First().AddDays(6)
}

// Next returns the following week. Stepping through the week's last
// day keeps 52- and 53-week years correct.
func (w Week) Next() Week {
	return WeekOf(w.Last().Next())
}

// Prev returns the preceding week.
func (w Week) Prev() Week {
	return WeekOf(w.First().Prev())
}

// String returns the page identity of the week, e.g. "2025/Week 02".
func (w Week) String() string {
	return fmt.Sprintf("%04d/Week %02d", w.Year, w.Num)
}

// Year is a calendar year.
type Year int

// First returns January of the year.
func (y Year) First() Month {
	return Month{Year: int(y), Month: time.January}
}

// Last returns December of the year.
func (y Year) Last() Month {
	return Month{Year: int(y), Month: time.December}
}

// Next returns the following year.
func (y Year) Next() Year { return y + 1 }

// Prev returns the preceding year.
func (y Year) Prev() Year { return y - 1 }

// String returns the page identity of the year, e.g. "2025".
func (y Year) String() string {
	return fmt.Sprintf("%04d", int(y))
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Recurrence decides whether a rule fires on a given date. The
// concrete types are the only implementations; each is comparable and
// carries only validated values.
type Recurrence interface {
	// Matches reports whether the rule fires on the date.
	Matches(d Date) bool

	// Frequency returns the rule's frequency keyword.
	Frequency() string
}

// Daily fires every day.
type Daily struct{}

func (Daily) Matches(Date) bool { return true }
func (Daily) Frequency() string { return "daily" }

// Weekly fires on the listed weekdays.
type Weekly struct {
	Weekdays []time.Weekday
}

func (r Weekly) Matches(d Date) bool {
	wd := d.Weekday()
	for _, w := range r.Weekdays {
		if w == wd {
			return true
		}
	}
	return false
}

func (Weekly) Frequency() string { return "weekly" }

// Monthly fires on the listed days of the month.
type Monthly struct {
	Monthdays []Monthday
}

func (r Monthly) Matches(d Date) bool {
	for _, md := range r.Monthdays {
		if int(md) == d.Day {
			return true
		}
	}
	return false
}

func (Monthly) Frequency() string { return "monthly" }

// WeekIndex selects an occurrence of a weekday within a month.
type WeekIndex int

const (
	WeekIndexFirst WeekIndex = iota
	WeekIndexSecond
	WeekIndexThird
	WeekIndexFourth
	WeekIndexLast
)

func parseWeekIndex(s string) (WeekIndex, error) {
	switch strings.ToLower(s) {
	case "", "first":
		return WeekIndexFirst, nil
	case "second":
		return WeekIndexSecond, nil
	case "third":
		return WeekIndexThird, nil
	case "fourth":
		return WeekIndexFourth, nil
	case "last":
		return WeekIndexLast, nil
	}
	return 0, fmt.Errorf("unknown week index %q", s)
}

func (i WeekIndex) String() string {
	switch i {
	case WeekIndexFirst:
		return "first"
	case WeekIndexSecond:
		return "second"
	case WeekIndexThird:
		return "third"
	case WeekIndexFourth:
		return "fourth"
	case WeekIndexLast:
		return "last"
	}
	return fmt.Sprintf("WeekIndex(%d)", int(i))
}

// RelativeMonthly fires on the nth occurrence of the listed weekdays
// within each month, for example the second Tuesday or the last Sunday.
type RelativeMonthly struct {
	Weekdays []time.Weekday
	Index    WeekIndex
}

func (r RelativeMonthly) Matches(d Date) bool {
	wd := d.Weekday()
	found := false
	for _, w := range r.Weekdays {
		if w == wd {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if r.Index == WeekIndexLast {
		// Zero full weeks left after this day means it is the
		// month's final occurrence of its weekday.
		return (MonthOf(d).NumDays()-d.Day)/7 == 0
	}
	return (d.Day-1)/7 == int(r.Index)
}

func (RelativeMonthly) Frequency() string { return "relative_monthly" }

// Yearly fires on the listed days of the year.
type Yearly struct {
	Yeardays []Yearday
}

func (r Yearly) Matches(d Date) bool {
	yd := d.YearDay()
	for _, y := range r.Yeardays {
		if int(y) == yd {
			return true
		}
	}
	return false
}

func (Yearly) Frequency() string { return "yearly" }

// Once fires only on the listed dates.
type Once struct {
	Dates []Date
}

func (r Once) Matches(d Date) bool {
	for _, od := range r.Dates {
		if od == d {
			return true
		}
	}
	return false
}

func (Once) Frequency() string { return "once" }

var (
	ErrWeekdaysNotAllowed  = errors.New("`weekdays` not allowed")
	ErrWeekdaysRequired    = errors.New("`weekdays` must be specified")
	ErrMonthdaysNotAllowed = errors.New("`monthdays` not allowed")
	ErrDaysRequired        = errors.New("either `monthdays` or `weekdays` must be specified")
	ErrYeardaysNotAllowed  = errors.New("`yeardays` not allowed")
	ErrYeardaysRequired    = errors.New("`yeardays` must be specified")
	ErrDatesNotAllowed     = errors.New("`dates` not allowed")
	ErrDatesRequired       = errors.New("`dates` must be specified")
	ErrIndexNotAllowed     = errors.New("`index` not allowed")
	ErrUnknownFrequency    = errors.New("unknown frequency")
)

// RecurrenceSpec is the loose, decodable form of a recurrence rule,
// before the per-frequency field rules have been enforced.
type RecurrenceSpec struct {
	Frequency string   `toml:"frequency"`
	Weekdays  []string `toml:"weekdays,omitempty"`
	Monthdays []int    `toml:"monthdays,omitempty"`
	Yeardays  []int    `toml:"yeardays,omitempty"`
	Dates     []string `toml:"dates,omitempty"`
	Index     string   `toml:"index,omitempty"`
}

// Recurrence validates the spec and builds the rule. Each frequency
// has a fixed set of allowed and required fields; violations produce
// an error naming the field and the frequency.
func (s RecurrenceSpec) Recurrence() (Recurrence, error) {
	fail := func(err error) (Recurrence, error) {
		return nil, fmt.Errorf("%w for %s recurrence", err, s.Frequency)
	}

	switch s.Frequency {
	case "daily":
		switch {
		case len(s.Weekdays) > 0:
			return fail(ErrWeekdaysNotAllowed)
		case len(s.Monthdays) > 0:
			return fail(ErrMonthdaysNotAllowed)
		case len(s.Yeardays) > 0:
			return fail(ErrYeardaysNotAllowed)
		case len(s.Dates) > 0:
			return fail(ErrDatesNotAllowed)
		case s.Index != "":
			return fail(ErrIndexNotAllowed)
		}
		return Daily{}, nil

	case "weekly":
		switch {
		case len(s.Weekdays) == 0:
			return fail(ErrWeekdaysRequired)
		case len(s.Monthdays) > 0:
			return fail(ErrMonthdaysNotAllowed)
		case len(s.Yeardays) > 0:
			return fail(ErrYeardaysNotAllowed)
		case len(s.Dates) > 0:
			return fail(ErrDatesNotAllowed)
		case s.Index != "":
			return fail(ErrIndexNotAllowed)
		}
		weekdays, err := parseWeekdays(s.Weekdays)
		if err != nil {
			return nil, err
		}
		return Weekly{Weekdays: weekdays}, nil

	case "monthly":
		switch {
		case len(s.Yeardays) > 0:
			return fail(ErrYeardaysNotAllowed)
		case len(s.Dates) > 0:
			return fail(ErrDatesNotAllowed)
		}
		if len(s.Monthdays) > 0 {
			// Absolute form: fixed days of the month.
			switch {
			case len(s.Weekdays) > 0:
				return fail(ErrWeekdaysNotAllowed)
			case s.Index != "":
				return fail(ErrIndexNotAllowed)
			}
			monthdays := make([]Monthday, 0, len(s.Monthdays))
			for _, n := range s.Monthdays {
				md, err := NewMonthday(n)
				if err != nil {
					return nil, err
				}
				monthdays = append(monthdays, md)
			}
			return Monthly{Monthdays: monthdays}, nil
		}
		if len(s.Weekdays) == 0 {
			return fail(ErrDaysRequired)
		}
		weekdays, err := parseWeekdays(s.Weekdays)
		if err != nil {
			return nil, err
		}
		index, err := parseWeekIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return RelativeMonthly{Weekdays: weekdays, Index: index}, nil

	case "yearly":
		switch {
		case len(s.Yeardays) == 0:
			return fail(ErrYeardaysRequired)
		case len(s.Weekdays) > 0:
			return fail(ErrWeekdaysNotAllowed)
		case len(s.Monthdays) > 0:
			return fail(ErrMonthdaysNotAllowed)
		case len(s.Dates) > 0:
			return fail(ErrDatesNotAllowed)
		case s.Index != "":
			return fail(ErrIndexNotAllowed)
		}
		yeardays := make([]Yearday, 0, len(s.Yeardays))
		for _, n := range s.Yeardays {
			yd, err := NewYearday(n)
			if err != nil {
				return nil, err
			}
			yeardays = append(yeardays, yd)
		}
		return Yearly{Yeardays: yeardays}, nil

	case "once":
		switch {
		case len(s.Dates) == 0:
			return fail(ErrDatesRequired)
		case len(s.Weekdays) > 0:
			return fail(ErrWeekdaysNotAllowed)
		case len(s.Monthdays) > 0:
			return fail(ErrMonthdaysNotAllowed)
		case len(s.Yeardays) > 0:
			return fail(ErrYeardaysNotAllowed)
		case s.Index != "":
			return fail(ErrIndexNotAllowed)
		}
		dates := make([]Date, 0, len(s.Dates))
		for _, raw := range s.Dates {
			d, err := ParseDate(raw)
			if err != nil {
				return nil, err
			}
			dates = append(dates, d)
		}
		return Once{Dates: dates}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownFrequency, s.Frequency)
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	weekdays := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		wd, err := parseWeekday(name)
		if err != nil {
			return nil, err
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	case "saturday", "sat":
		return time.Saturday, nil
	case "sunday", "sun":
		return time.Sunday, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

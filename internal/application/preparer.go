package application

import (
	"fmt"
	"time"

	"diarist/internal/domain"
	"diarist/internal/logger"
	"diarist/internal/ports"
)

// link renders a wiki link to a page identity.
func link(name string) string {
	return "[[" + name + "]]"
}

// embed renders an embedded transclusion of a page identity.
func embed(name string) string {
	return "{{embed [[" + name + "]]}}"
}

// Preparer walks a date range day by day and brings the day, week,
// month and year journal pages up to date. Pages are only written
// when something actually changed, so re-running is a no-op.
type Preparer struct {
	Vault   ports.Vault
	History ports.History // optional
	Options PageOptions
	Events  []*domain.Event
}

// Run prepares every journal page touched by the range, inclusive on
// both ends. Week, month and year pages are prepared when the loop
// enters them.
func (p *Preparer) Run(from, to domain.Date) error {
	if to.Before(from) {
		return fmt.Errorf("invalid range: %s is before %s", to, from)
	}
	logger.Info("preparing journal pages from %s to %s", from, to)

	date := from
	week := domain.WeekOf(date)
	month := domain.MonthOf(date)
	year := domain.Year(date.Year)

	if err := p.prepareDay(date); err != nil {
		return err
	}
	if err := p.prepareWeek(week); err != nil {
		return err
	}
	if err := p.prepareMonth(month); err != nil {
		return err
	}
	if err := p.prepareYear(year); err != nil {
		return err
	}

	for date.Before(to) {
		date = date.Next()
		if err := p.prepareDay(date); err != nil {
			return err
		}
		if w := domain.WeekOf(date); w != week {
			week = w
			if err := p.prepareWeek(week); err != nil {
				return err
			}
		}
		if m := domain.MonthOf(date); m != month {
			month = m
			if err := p.prepareMonth(month); err != nil {
				return err
			}
		}
		if y := domain.Year(date.Year); y != year {
			year = y
			if err := p.prepareYear(year); err != nil {
				return err
			}
		}
	}
	return nil
}

// update loads a journal page, applies fn and writes it back only
// when modified.
func (p *Preparer) update(name string, fn func(*domain.Page)) error {
	page, err := p.Vault.Journal(name)
	if err != nil {
		return err
	}
	fn(page)
	if !page.Modified() {
		logger.Debug("%s unchanged", name)
		return nil
	}
	created := !page.Exists()
	if err := p.Vault.SaveJournal(page); err != nil {
		return err
	}
	logger.Debug("%s written (created=%v)", name, created)
	if p.History != nil {
		write := domain.PageWrite{
			Name:      name,
			Path:      p.Vault.JournalPath(name),
			Created:   created,
			WrittenAt: time.Now(),
		}
		if err := p.History.Record(write); err != nil {
			logger.Warn("recording history for %s: %v", name, err)
		}
	}
	return nil
}

func (p *Preparer) prepareDay(date domain.Date) error {
	s := p.Options.Day
	if s.IsEmpty() {
		return nil
	}
	return p.update(date.String(), func(page *domain.Page) {
		if s.DayOfWeek {
			page.InsertProperty("day", date.Weekday().String())
		}
		if s.LinkToWeek {
			page.InsertProperty("week", link(domain.WeekOf(date).String()))
		}
		if s.LinkToMonth {
			page.InsertProperty("month", link(domain.MonthOf(date).String()))
		}
		if s.NavLinks {
			page.InsertProperty("next", link(date.Next().String()))
			page.InsertProperty("prev", link(date.Prev().String()))
		}
		if s.Events {
			var reminders []string
			for _, event := range p.Events {
				if event.Matches(date) {
					reminders = append(reminders, event.Content)
				}
			}
			page.PrependLines(reminders)
		}
	})
}

func (p *Preparer) prepareWeek(week domain.Week) error {
	s := p.Options.Week
	if s.IsEmpty() {
		return nil
	}
	return p.update(week.String(), func(page *domain.Page) {
		if s.LinkToMonth {
			page.InsertProperty("month", link(domain.MonthOf(week.First()).String()))
		}
		if s.NavLinks {
			page.InsertProperty("next", link(week.Next().String()))
			page.InsertProperty("prev", link(week.Prev().String()))
		}
		if s.Days {
			var lines []string
			last := week.Last()
			for d := week.First(); !d.After(last); d = d.Next() {
				lines = append(lines, fmt.Sprintf("- %s %s", d.Weekday(), embed(d.String())))
			}
			page.PrependLines(lines)
		}
	})
}

func (p *Preparer) prepareMonth(month domain.Month) error {
	s := p.Options.Month
	if s.IsEmpty() {
		return nil
	}
	return p.update(month.String(), func(page *domain.Page) {
		if s.NavLinks {
			page.InsertProperty("next", link(month.Next().String()))
			page.InsertProperty("prev", link(month.Prev().String()))
		}
		if s.Days {
			var lines []string
			last := month.Last()
			for d := month.First(); !d.After(last); d = d.Next() {
				if d.Day == 1 || d.Weekday() == time.Monday {
					lines = append(lines, "#### "+link(domain.WeekOf(d).String()))
				}
				lines = append(lines, fmt.Sprintf("- %s %s", d.Weekday(), embed(d.String())))
			}
			page.PrependLines(lines)
		}
	})
}

func (p *Preparer) prepareYear(year domain.Year) error {
	s := p.Options.Year
	if s.IsEmpty() {
		return nil
	}
	return p.update(year.String(), func(page *domain.Page) {
		if s.NavLinks {
			page.InsertProperty("next", link(year.Next().String()))
			page.InsertProperty("prev", link(year.Prev().String()))
		}
		if s.Months {
			var lines []string
			last := year.Last()
			for m := year.First(); ; m = m.Next() {
				lines = append(lines, link(m.String()))
				if m == last {
					break
				}
			}
			page.PrependLines(lines)
		}
	})
}

package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"diarist/internal/config"
)

// DaySettings selects what the preparer adds to a day page.
type DaySettings struct {
	DayOfWeek   bool `toml:"day"`
	LinkToWeek  bool `toml:"week"`
	LinkToMonth bool `toml:"month"`
	NavLinks    bool `toml:"nav"`
	Events      bool `toml:"events"`
}

// IsEmpty reports whether nothing is selected; the page is skipped.
func (s DaySettings) IsEmpty() bool { return s == DaySettings{} }

// WeekSettings selects what the preparer adds to a week page.
type WeekSettings struct {
	LinkToMonth bool `toml:"month"`
	NavLinks    bool `toml:"nav"`
	Days        bool `toml:"week"`
}

func (s WeekSettings) IsEmpty() bool { return s == WeekSettings{} }

// MonthSettings selects what the preparer adds to a month page.
type MonthSettings struct {
	NavLinks bool `toml:"nav"`
	Days     bool `toml:"month"`
}

func (s MonthSettings) IsEmpty() bool { return s == MonthSettings{} }

// YearSettings selects what the preparer adds to a year page.
type YearSettings struct {
	NavLinks bool `toml:"nav"`
	Months   bool `toml:"month"`
}

func (s YearSettings) IsEmpty() bool { return s == YearSettings{} }

// ParseDaySettings builds day settings from flag values.
func ParseDaySettings(values []string) (DaySettings, error) {
	var s DaySettings
	for _, v := range values {
		switch v {
		case "day":
			s.DayOfWeek = true
		case "week":
			s.LinkToWeek = true
		case "month":
			s.LinkToMonth = true
		case "nav":
			s.NavLinks = true
		case "events":
			s.Events = true
		default:
			return DaySettings{}, fmt.Errorf("unknown day page option %q", v)
		}
	}
	return s, nil
}

// ParseWeekSettings builds week settings from flag values.
func ParseWeekSettings(values []string) (WeekSettings, error) {
	var s WeekSettings
	for _, v := range values {
		switch v {
		case "month":
			s.LinkToMonth = true
		case "nav":
			s.NavLinks = true
		case "week":
			s.Days = true
		default:
			return WeekSettings{}, fmt.Errorf("unknown week page option %q", v)
		}
	}
	return s, nil
}

// ParseMonthSettings builds month settings from flag values.
func ParseMonthSettings(values []string) (MonthSettings, error) {
	var s MonthSettings
	for _, v := range values {
		switch v {
		case "nav":
			s.NavLinks = true
		case "month":
			s.Days = true
		default:
			return MonthSettings{}, fmt.Errorf("unknown month page option %q", v)
		}
	}
	return s, nil
}

// ParseYearSettings builds year settings from flag values.
func ParseYearSettings(values []string) (YearSettings, error) {
	var s YearSettings
	for _, v := range values {
		switch v {
		case "nav":
			s.NavLinks = true
		case "month":
			s.Months = true
		default:
			return YearSettings{}, fmt.Errorf("unknown year page option %q", v)
		}
	}
	return s, nil
}

// PageOptions is the resolved option set the preparer runs with.
// The *Set flags record which units were chosen explicitly on the
// command line; explicit choices are not overridden by vault settings.
type PageOptions struct {
	Day   DaySettings
	Week  WeekSettings
	Month MonthSettings
	Year  YearSettings

	DaySet   bool
	WeekSet  bool
	MonthSet bool
	YearSet  bool
}

// DefaultPageOptions enables everything.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		Day:   DaySettings{DayOfWeek: true, LinkToWeek: true, LinkToMonth: true, NavLinks: true, Events: true},
		Week:  WeekSettings{LinkToMonth: true, NavLinks: true, Days: true},
		Month: MonthSettings{NavLinks: true, Days: true},
		Year:  YearSettings{NavLinks: true, Months: true},
	}
}

// VaultSettings is the page configuration read from .diarist.toml in
// the vault root.
type VaultSettings struct {
	Pages struct {
		Day   *DaySettings   `toml:"day"`
		Week  *WeekSettings  `toml:"week"`
		Month *MonthSettings `toml:"month"`
		Year  *YearSettings  `toml:"year"`
	} `toml:"pages"`
}

// LoadVaultSettings reads the vault's settings file. A missing file
// yields empty settings, not an error.
func LoadVaultSettings(vaultPath string) (*VaultSettings, error) {
	path := filepath.Join(vaultPath, config.SettingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &VaultSettings{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", config.SettingsFile, err)
	}
	var settings VaultSettings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", config.SettingsFile, err)
	}
	return &settings, nil
}

// Apply layers vault settings under the options: a unit configured in
// the settings file replaces the defaults unless the command line
// already set it.
func (o *PageOptions) Apply(settings *VaultSettings) {
	if !o.DaySet && settings.Pages.Day != nil {
		o.Day = *settings.Pages.Day
	}
	if !o.WeekSet && settings.Pages.Week != nil {
		o.Week = *settings.Pages.Week
	}
	if !o.MonthSet && settings.Pages.Month != nil {
		o.Month = *settings.Pages.Month
	}
	if !o.YearSet && settings.Pages.Year != nil {
		o.Year = *settings.Pages.Year
	}
}

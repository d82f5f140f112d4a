package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarist/internal/adapters/sqlite"
	"diarist/internal/application"
	"diarist/internal/domain"
	"diarist/internal/logger"
	"diarist/internal/ports"
)

var (
	prepareFrom string
	prepareTo   string

	dayOptions   []string
	weekOptions  []string
	monthOptions []string
	yearOptions  []string

	noDayPages   bool
	noWeekPages  bool
	noMonthPages bool
	noYearPages  bool

	noHistory bool
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Generate and update journal pages for a date range",
	Long: `Walk the range day by day and bring every touched day, week,
month and year page up to date. Pages are only written when something
actually changed, so running prepare twice writes nothing the second
time.

Recurring events are read from the ` + "`events/recurring`" + ` page: each
toml code block there describes one event. Malformed blocks are
reported and skipped.

Page content is controlled per unit, either with the flags below or
with a .diarist.toml file in the vault root; flags win.

Examples:
  diarist prepare
  diarist prepare --from 2025-01-01 --to 2025-03-31
  diarist prepare --day day,nav,events --no-year-pages`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := prepareRange()
		if err != nil {
			return err
		}
		options, err := prepareOptions(cmd)
		if err != nil {
			return err
		}

		var events []*domain.Event
		if options.Day.Events {
			events, err = GetVault().Events()
			if err != nil {
				logger.Warn("loading events: %v", err)
				events = nil
			}
		}

		var history ports.History
		if !noHistory {
			h, err := sqlite.OpenHistory(GetVault().Root())
			if err != nil {
				logger.Warn("opening history: %v", err)
			} else {
				history = h
				defer h.Close()
			}
		}

		preparer := &application.Preparer{
			Vault:   GetVault(),
			History: history,
			Options: options,
			Events:  events,
		}
		return preparer.Run(from, to)
	},
}

// prepareRange resolves the date range: today through one month ahead
// unless overridden.
func prepareRange() (domain.Date, domain.Date, error) {
	from := domain.Today()
	if prepareFrom != "" {
		var err error
		from, err = domain.ParseDate(prepareFrom)
		if err != nil {
			return domain.Date{}, domain.Date{}, err
		}
	}
	to := domain.DateOf(from.Time().AddDate(0, 1, 0))
	if prepareTo != "" {
		var err error
		to, err = domain.ParseDate(prepareTo)
		if err != nil {
			return domain.Date{}, domain.Date{}, err
		}
	}
	if to.Before(from) {
		return domain.Date{}, domain.Date{}, fmt.Errorf("--to %s is before --from %s", to, from)
	}
	return from, to, nil
}

// prepareOptions layers defaults, vault settings and flags.
func prepareOptions(cmd *cobra.Command) (application.PageOptions, error) {
	options := application.DefaultPageOptions()

	if cmd.Flags().Changed("day") {
		s, err := application.ParseDaySettings(dayOptions)
		if err != nil {
			return application.PageOptions{}, err
		}
		options.Day, options.DaySet = s, true
	}
	if cmd.Flags().Changed("week") {
		s, err := application.ParseWeekSettings(weekOptions)
		if err != nil {
			return application.PageOptions{}, err
		}
		options.Week, options.WeekSet = s, true
	}
	if cmd.Flags().Changed("month") {
		s, err := application.ParseMonthSettings(monthOptions)
		if err != nil {
			return application.PageOptions{}, err
		}
		options.Month, options.MonthSet = s, true
	}
	if cmd.Flags().Changed("year") {
		s, err := application.ParseYearSettings(yearOptions)
		if err != nil {
			return application.PageOptions{}, err
		}
		options.Year, options.YearSet = s, true
	}

	if noDayPages {
		options.Day, options.DaySet = application.DaySettings{}, true
	}
	if noWeekPages {
		options.Week, options.WeekSet = application.WeekSettings{}, true
	}
	if noMonthPages {
		options.Month, options.MonthSet = application.MonthSettings{}, true
	}
	if noYearPages {
		options.Year, options.YearSet = application.YearSettings{}, true
	}

	settings, err := application.LoadVaultSettings(GetVault().Root())
	if err != nil {
		return application.PageOptions{}, err
	}
	options.Apply(settings)
	return options, nil
}

func init() {
	prepareCmd.Flags().StringVar(&prepareFrom, "from", "", "first date to prepare (YYYY-MM-DD, default today)")
	prepareCmd.Flags().StringVar(&prepareTo, "to", "", "last date to prepare (YYYY-MM-DD, default one month after --from)")

	prepareCmd.Flags().StringSliceVar(&dayOptions, "day", nil, "day page content: day,week,month,nav,events")
	prepareCmd.Flags().StringSliceVar(&weekOptions, "week", nil, "week page content: month,nav,week")
	prepareCmd.Flags().StringSliceVar(&monthOptions, "month", nil, "month page content: nav,month")
	prepareCmd.Flags().StringSliceVar(&yearOptions, "year", nil, "year page content: nav,month")

	prepareCmd.Flags().BoolVar(&noDayPages, "no-day-pages", false, "skip day pages entirely")
	prepareCmd.Flags().BoolVar(&noWeekPages, "no-week-pages", false, "skip week pages entirely")
	prepareCmd.Flags().BoolVar(&noMonthPages, "no-month-pages", false, "skip month pages entirely")
	prepareCmd.Flags().BoolVar(&noYearPages, "no-year-pages", false, "skip year pages entirely")

	prepareCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record writes in the history index")

	rootCmd.AddCommand(prepareCmd)
}

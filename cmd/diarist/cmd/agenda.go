package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"diarist/internal/adapters/tui"
	"diarist/internal/domain"
)

var agendaDays int

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Preview upcoming reminders in a TUI",
	Long: `Show a scrolling preview of the reminders due over the coming
days, without writing any pages.

Examples:
  diarist agenda
  diarist agenda --days 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := GetVault().Events()
		if err != nil {
			return err
		}

		days := make([]tui.AgendaDay, 0, agendaDays)
		date := domain.Today()
		for i := 0; i < agendaDays; i++ {
			day := tui.AgendaDay{Date: date}
			for _, event := range events {
				if event.Matches(date) {
					day.Reminders = append(day.Reminders, event.Content)
				}
			}
			days = append(days, day)
			date = date.Next()
		}

		p := tea.NewProgram(tui.NewAgenda(days), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running agenda: %w", err)
		}
		return nil
	},
}

func init() {
	agendaCmd.Flags().IntVar(&agendaDays, "days", 14, "number of days to preview")
	rootCmd.AddCommand(agendaCmd)
}

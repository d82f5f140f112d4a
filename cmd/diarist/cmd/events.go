package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarist/internal/domain"
)

var eventsOn string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the vault's recurring events",
	Long: `List the recurring events parsed from the vault's
` + "`events/recurring`" + ` page. With --on, only the events whose reminder is
due on that date are shown.

Examples:
  diarist events
  diarist events --on 2025-01-12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := GetVault().Events()
		if err != nil {
			return err
		}

		if eventsOn != "" {
			date, err := domain.ParseDate(eventsOn)
			if err != nil {
				return err
			}
			matched := events[:0]
			for _, event := range events {
				if event.Matches(date) {
					matched = append(matched, event)
				}
			}
			events = matched
		}

		if len(events) == 0 {
			fmt.Println("No events.")
			return nil
		}
		for _, event := range events {
			fmt.Printf("%-16s %s\n", event.Recurrence.Frequency(), event.Content)
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().StringVar(&eventsOn, "on", "", "only events due on this date (YYYY-MM-DD)")
	rootCmd.AddCommand(eventsCmd)
}

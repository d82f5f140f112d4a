package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarist/internal/adapters/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent page writes",
	Long: `Show the most recent journal page writes recorded by prepare,
newest first.

Examples:
  diarist history
  diarist history --limit 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := sqlite.OpenHistory(GetVault().Root())
		if err != nil {
			return err
		}
		defer h.Close()

		writes, err := h.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(writes) == 0 {
			fmt.Println("No writes recorded yet.")
			return nil
		}
		for _, w := range writes {
			action := "updated"
			if w.Created {
				action = "created"
			}
			fmt.Printf("%s  %-7s  %s\n", w.WrittenAt.Format("2006-01-02 15:04:05"), action, w.Name)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of writes to show")
	rootCmd.AddCommand(historyCmd)
}

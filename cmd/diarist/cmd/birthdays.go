package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"diarist/internal/application"
	"diarist/internal/domain"
)

var birthdaysYear int

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Emit birthday reminder event blocks",
	Long: `Scan the vault for pages with a birthday front-matter property
and print one toml event block per person, ready to paste into the
` + "`events/recurring`" + ` page. The person's name comes from the page's
first alias, falling back to the filename.

Examples:
  diarist birthdays
  diarist birthdays --year 2026 >> vault/events/recurring.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		year := birthdaysYear
		if year == 0 {
			year = domain.Today().Year
		}

		birthdays, err := application.ScanBirthdays(GetVault().Root(), year)
		if err != nil {
			return err
		}
		if len(birthdays) == 0 {
			fmt.Println("No birthdays found.")
			return nil
		}

		for i, b := range birthdays {
			if i > 0 {
				fmt.Println()
			}
			data, err := toml.Marshal(b.Reminder())
			if err != nil {
				return fmt.Errorf("encoding reminder for %s: %w", b.Name, err)
			}
			block := domain.CodeBlock{Kind: "toml", Code: string(data)}
			fmt.Println(block.String())
		}
		return nil
	},
}

func init() {
	birthdaysCmd.Flags().IntVar(&birthdaysYear, "year", 0, "target year (default the current year)")
	rootCmd.AddCommand(birthdaysCmd)
}

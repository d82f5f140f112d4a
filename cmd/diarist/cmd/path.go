package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	pathNote bool
	pathCopy bool
)

var pathCmd = &cobra.Command{
	Use:   "path <identity>",
	Short: "Resolve a page identity to its file path",
	Long: `Resolve a page identity to the absolute path of its markdown
file. Journal identities (2025-01-12, 2025/Week 02, 2025/January,
2025) resolve through the journals folder with flattened filenames;
use --note for regular pages.

Examples:
  diarist path "2025/Week 02"
  diarist path events/recurring --note --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetVault().JournalPath(args[0])
		if pathNote {
			path = GetVault().NotePath(args[0])
		}
		if pathCopy {
			if err := clipboard.WriteAll(path); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	pathCmd.Flags().BoolVar(&pathNote, "note", false, "resolve through the page tree instead of the journals folder")
	pathCmd.Flags().BoolVar(&pathCopy, "copy", false, "also copy the path to the clipboard")
	rootCmd.AddCommand(pathCmd)
}

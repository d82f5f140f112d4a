package cmd

import (
	"github.com/spf13/cobra"

	"diarist/internal/adapters/editor"
	"diarist/internal/adapters/obsidian"
	"diarist/internal/domain"
)

var (
	openNote   bool
	openEditor bool
)

var openCmd = &cobra.Command{
	Use:   "open [identity]",
	Short: "Open a page in Obsidian or $EDITOR",
	Long: `Open a page by identity. Without an argument, today's journal
page is opened. The default opener is Obsidian's obsidian:// URI
scheme; --editor uses $EDITOR instead.

Examples:
  diarist open
  diarist open 2025/January
  diarist open events/recurring --note --editor`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := domain.Today().String()
		if len(args) == 1 {
			name = args[0]
		}

		path := GetVault().JournalPath(name)
		if openNote {
			path = GetVault().NotePath(name)
		}

		if openEditor {
			return editor.NewOpener().OpenFile(path)
		}
		return obsidian.NewOpener(GetVault().Root()).OpenFile(path)
	},
}

func init() {
	openCmd.Flags().BoolVar(&openNote, "note", false, "resolve through the page tree instead of the journals folder")
	openCmd.Flags().BoolVar(&openEditor, "editor", false, "open in $EDITOR instead of Obsidian")
	rootCmd.AddCommand(openCmd)
}

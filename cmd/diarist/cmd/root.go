package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diarist/internal/adapters/filesystem"
	"diarist/internal/config"
	"diarist/internal/logger"
)

var (
	vaultPath string
	verbose   bool
	vault     *filesystem.Vault
)

var rootCmd = &cobra.Command{
	Use:   "diarist",
	Short: "Journal page automation for note vaults",
	Long: `diarist keeps the journal section of an Obsidian or Logseq style
vault up to date: it generates day, week, month and year pages with
navigation links and injects recurring-event reminders into daily
pages. Re-running never duplicates anything.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		logger.SetVerbose(verbose)
		var err error
		vault, err = filesystem.NewVault(vaultPath)
		if err != nil {
			return err
		}
		logger.Debug("using vault %s", vault.Root())
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose logging to stderr")
}

// GetVault returns the initialized vault
func GetVault() *filesystem.Vault {
	return vault
}

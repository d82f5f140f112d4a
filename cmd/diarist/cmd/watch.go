package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"diarist/internal/application"
	"diarist/internal/config"
	"diarist/internal/domain"
	"diarist/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-prepare journal pages when the events page changes",
	Long: `Prepare the coming month once, then keep watching the events
page and the settings file; every change triggers another preparation
run. Because pages are only written when modified, each run touches
only what the change affects.

Example:
  diarist watch --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eventsPath := GetVault().NotePath(config.EventsPage)
		settingsPath := filepath.Join(GetVault().Root(), config.SettingsFile)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		defer watcher.Close()

		// Watch directories, not files: editors replace files on
		// save and a file watch dies with the old inode.
		watched := map[string]bool{eventsPath: true, settingsPath: true}
		for _, dir := range []string{filepath.Dir(eventsPath), GetVault().Root()} {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
		}

		if err := watchRun(); err != nil {
			return err
		}
		fmt.Printf("Watching %s\n", eventsPath)

		// Editors fire several events per save; let them settle.
		var pending <-chan time.Time
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !watched[filepath.Clean(event.Name)] {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logger.Debug("%s changed (%s)", event.Name, event.Op)
				pending = time.After(500 * time.Millisecond)

			case <-pending:
				pending = nil
				if err := watchRun(); err != nil {
					logger.Warn("prepare failed: %v", err)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watcher: %v", err)
			}
		}
	},
}

// watchRun prepares today through one month ahead with the vault's
// configured options.
func watchRun() error {
	options := application.DefaultPageOptions()
	settings, err := application.LoadVaultSettings(GetVault().Root())
	if err != nil {
		return err
	}
	options.Apply(settings)

	events, err := GetVault().Events()
	if err != nil {
		return err
	}

	from := domain.Today()
	to := domain.DateOf(from.Time().AddDate(0, 1, 0))
	preparer := &application.Preparer{
		Vault:   GetVault(),
		Options: options,
		Events:  events,
	}
	return preparer.Run(from, to)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

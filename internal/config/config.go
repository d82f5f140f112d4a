package config

import "os"

const DefaultVaultPath = "~/Documents/notes"

// SettingsFile is the per-vault settings file, relative to the vault root.
const SettingsFile = ".diarist.toml"

// EventsPage is the page identity holding the recurring event blocks.
const EventsPage = "events/recurring"

// VaultPath returns the vault path from the DIARIST_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("DIARIST_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}

package ports

// ObsidianOpener opens vault files in Obsidian.
type ObsidianOpener interface {
	// OpenFile opens the file through the obsidian:// URI scheme.
	// The path must be absolute and inside the vault.
	OpenFile(path string) error
}

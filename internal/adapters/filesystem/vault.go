package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"diarist/internal/config"
	"diarist/internal/domain"
	"diarist/internal/logger"
	"diarist/internal/ports"
)

// Vault implements ports.Vault on a directory of markdown pages.
// Journal pages live in the folder named by .obsidian/daily-notes.json
// (default "journals"), with / in identities flattened to ___ so week
// and month pages stay in one directory.
type Vault struct {
	root     string
	journals string
}

var _ ports.Vault = (*Vault)(nil)

// NewVault opens the vault at path, creating the directory when
// missing. A leading ~ expands to the home directory.
func NewVault(path string) (*Vault, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("creating vault: %w", err)
	}
	v := &Vault{root: path, journals: filepath.Join(path, "journals")}
	if folder := dailyNotesFolder(path); folder != "" {
		v.journals = filepath.Join(path, folder)
	}
	return v, nil
}

// dailyNotesFolder reads the journals folder from Obsidian's
// daily-notes plugin config, if present.
func dailyNotesFolder(root string) string {
	data, err := os.ReadFile(filepath.Join(root, ".obsidian", "daily-notes.json"))
	if err != nil {
		return ""
	}
	var cfg struct {
		Folder string `json:"folder"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Warn("parsing daily-notes.json: %v", err)
		return ""
	}
	return cfg.Folder
}

// Root returns the vault's absolute root path.
func (v *Vault) Root() string {
	return v.root
}

// flatten makes a journal identity a single filename.
func flatten(name string) string {
	return strings.ReplaceAll(name, "/", "___")
}

// JournalPath resolves a journal identity to its file path.
func (v *Vault) JournalPath(name string) string {
	return filepath.Join(v.journals, flatten(name)+".md")
}

// NotePath resolves a page identity to its file path.
func (v *Vault) NotePath(name string) string {
	return filepath.Join(v.root, filepath.FromSlash(name)+".md")
}

// Journal loads a journal page, or an empty page when absent.
func (v *Vault) Journal(name string) (*domain.Page, error) {
	return loadPage(v.JournalPath(name), name)
}

// Note loads a regular page, or an empty page when absent.
func (v *Vault) Note(name string) (*domain.Page, error) {
	return loadPage(v.NotePath(name), name)
}

func loadPage(path, name string) (*domain.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewPage(name), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	page, err := domain.LoadPage(name, string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return page, nil
}

// SaveJournal writes a journal page to the journals folder.
func (v *Vault) SaveJournal(page *domain.Page) error {
	return v.write(v.JournalPath(page.Name()), page)
}

// SaveNote writes a regular page into the page tree.
func (v *Vault) SaveNote(page *domain.Page) error {
	return v.write(v.NotePath(page.Name()), page)
}

func (v *Vault) write(path string, page *domain.Page) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(page.Render()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	page.MarkSaved()
	return nil
}

// Events loads the recurring events page and decodes its toml blocks.
// A malformed block is reported and skipped; the rest still load.
func (v *Vault) Events() ([]*domain.Event, error) {
	page, err := v.Note(config.EventsPage)
	if err != nil {
		return nil, err
	}
	var events []*domain.Event
	for _, block := range page.CodeBlocks() {
		if block.Kind != "toml" {
			continue
		}
		event, err := domain.ParseEvent(block)
		if err != nil {
			logger.Warn("skipping event block in %s: %v", config.EventsPage, err)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

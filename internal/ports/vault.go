package ports

import "diarist/internal/domain"

// Vault defines the storage boundary for pages. Journal pages live in
// the vault's journals folder under flattened filenames; notes live in
// the regular page tree.
type Vault interface {
	// Journal loads a journal page by identity, returning an empty
	// non-existing page when the file is absent.
	Journal(name string) (*domain.Page, error)

	// Note loads a regular page by identity, returning an empty
	// non-existing page when the file is absent.
	Note(name string) (*domain.Page, error)

	// SaveJournal persists a journal page and marks it saved.
	SaveJournal(page *domain.Page) error

	// SaveNote persists a regular page and marks it saved.
	SaveNote(page *domain.Page) error

	// JournalPath resolves a journal identity to an absolute path.
	JournalPath(name string) string

	// NotePath resolves a page identity to an absolute path.
	NotePath(name string) string

	// Events loads the recurring events from the vault's events
	// page. Malformed blocks are skipped, not fatal.
	Events() ([]*domain.Event, error)
}

package ports

import "diarist/internal/domain"

// History records page writes so past generation activity can be
// inspected.
type History interface {
	// Record stores one page write.
	Record(write domain.PageWrite) error

	// Recent returns up to limit writes, newest first.
	Recent(limit int) ([]domain.PageWrite, error)

	// Close releases the underlying store.
	Close() error
}

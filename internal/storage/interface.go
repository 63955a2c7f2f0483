package storage

import "github.com/julianstephens/summon/internal/models"

// Provider persists the full project list. Every Save writes the
// whole list; there is no incremental diffing.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Load returns the persisted list, or an empty list if nothing
	// has been stored yet. A non-nil error means the stored content
	// exists but could not be read as a project list.
	Load() ([]models.Project, error)
	Save(projects []models.Project) error

	// Utils
	ConfigPath() string
}

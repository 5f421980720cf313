package store

import (
	"github.com/The-Faulkners/putttracker/internal/models"
)

// Store is the storage port for the two persisted records: the session
// list and the last-used settings.
type Store interface {
	// Sessions returns the stored session list. A missing or unreadable
	// record yields an empty list, never an error.
	Sessions() ([]models.PracticeSession, error)
	// SaveSessions replaces the stored session list in full.
	SaveSessions(sessions []models.PracticeSession) error
	// Settings returns the stored settings, falling back to the defaults
	// when the record is missing or unreadable.
	Settings() (models.SessionSettings, error)
	// SaveSettings replaces the stored settings in full.
	SaveSettings(settings models.SessionSettings) error
	// Close ends the database connection.
	Close() error
}

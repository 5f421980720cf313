// Package backup exports and imports the full practice history as JSON
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/The-Faulkners/putttracker/internal/apperr"
	"github.com/The-Faulkners/putttracker/internal/models"
	"github.com/The-Faulkners/putttracker/store"
)

// Version identifies the backup format. Bumped when the bundle layout
// changes in a way old importers cannot read.
const Version = 1

// ErrInvalidBackup is returned when an import payload is not a backup
// bundle this version understands.
var ErrInvalidBackup = &apperr.Error{
	Message: "not a valid backup file",
}

// Bundle is the on-disk backup format. It wraps the two persisted
// records with enough metadata to validate an import.
type Bundle struct {
	ExportedAt time.Time                `json:"exported_at"`
	Sessions   []models.PracticeSession `json:"sessions"`
	Settings   *models.SessionSettings  `json:"settings,omitempty"`
	Version    int                      `json:"version"`
}

// Export serializes the entire store into an indented JSON bundle.
func Export(s store.Store) ([]byte, error) {
	sessions, err := s.Sessions()
	if err != nil {
		return nil, err
	}

	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}

	b := Bundle{
		Version:    Version,
		ExportedAt: time.Now(),
		Sessions:   sessions,
		Settings:   &settings,
	}

	return json.MarshalIndent(b, "", "  ")
}

// Import replaces the store's contents with the bundle in data and
// returns the number of imported sessions. The payload is validated
// before anything is written, so a rejected import leaves the store
// untouched.
func Import(s store.Store, data []byte) (int, error) {
	var raw struct {
		Sessions json.RawMessage         `json:"sessions"`
		Settings *models.SessionSettings `json:"settings"`
		Version  int                     `json:"version"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, ErrInvalidBackup.Wrap(err)
	}

	// Sessions must be present and must be an array, not null or some
	// other JSON value.
	trimmed := bytes.TrimSpace(raw.Sessions)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, ErrInvalidBackup
	}

	var sessions []models.PracticeSession

	if err := json.Unmarshal(raw.Sessions, &sessions); err != nil {
		return 0, ErrInvalidBackup.Wrap(err)
	}

	if err := s.SaveSessions(sessions); err != nil {
		return 0, err
	}

	if raw.Settings != nil {
		if err := s.SaveSettings(*raw.Settings); err != nil {
			return 0, err
		}
	}

	return len(sessions), nil
}

// FileName returns the suggested name for a backup exported at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("putt-tracker-backup-%s.json", t.Format("2006-01-02"))
}

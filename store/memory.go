package store

import (
	"encoding/json"

	"github.com/The-Faulkners/putttracker/internal/models"
)

// Memory is an in-memory Store used in tests and anywhere a durable
// database is not wanted. Records are kept JSON-encoded so reads return
// copies with the same round-trip behaviour as the BoltDB client.
type Memory struct {
	sessions []byte
	settings []byte
	// WriteErr, when set, is returned by every mutating operation so
	// tests can exercise write-failure propagation.
	WriteErr error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Sessions() ([]models.PracticeSession, error) {
	var sessions []models.PracticeSession

	if len(m.sessions) == 0 {
		return sessions, nil
	}

	if err := json.Unmarshal(m.sessions, &sessions); err != nil {
		return nil, nil
	}

	return sessions, nil
}

func (m *Memory) SaveSessions(sessions []models.PracticeSession) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}

	value, err := json.Marshal(sessions)
	if err != nil {
		return err
	}

	m.sessions = value

	return nil
}

func (m *Memory) Settings() (models.SessionSettings, error) {
	settings := models.DefaultSettings()

	if len(m.settings) == 0 {
		return settings, nil
	}

	if err := json.Unmarshal(m.settings, &settings); err != nil {
		return models.DefaultSettings(), nil
	}

	return settings, nil
}

func (m *Memory) SaveSettings(settings models.SessionSettings) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}

	value, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	m.settings = value

	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Package store persists practice sessions and settings to the data store
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/The-Faulkners/putttracker/internal/models"
)

const recordsBucket = "records"

var (
	sessionsKey = []byte("sessions")
	settingsKey = []byte("settings")
)

var errPuttRunning = errors.New(
	"is the putt tracker already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Sessions returns the stored session list. A missing record or one that
// fails to decode yields an empty list rather than an error, so a corrupt
// store degrades to a fresh start instead of locking the user out.
func (c *Client) Sessions() ([]models.PracticeSession, error) {
	var sessions []models.PracticeSession

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(recordsBucket)).Get(sessionsKey)
		if len(b) == 0 {
			return nil
		}

		if uerr := json.Unmarshal(b, &sessions); uerr != nil {
			sessions = nil
		}

		return nil
	})

	return sessions, err
}

func (c *Client) SaveSessions(sessions []models.PracticeSession) error {
	value, err := json.Marshal(sessions)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put(sessionsKey, value)
	})
}

// Settings returns the stored settings, or the defaults when the record
// is missing or fails to decode.
func (c *Client) Settings() (models.SessionSettings, error) {
	settings := models.DefaultSettings()

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(recordsBucket)).Get(settingsKey)
		if len(b) == 0 {
			return nil
		}

		if uerr := json.Unmarshal(b, &settings); uerr != nil {
			settings = models.DefaultSettings()
		}

		return nil
	})

	return settings, err
}

func (c *Client) SaveSettings(settings models.SessionSettings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put(settingsKey, value)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errPuttRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the records bucket if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(recordsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

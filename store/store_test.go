package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/The-Faulkners/putttracker/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "putt.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

// corruptRecord overwrites a record with bytes that will not decode.
func corruptRecord(t *testing.T, c *Client, key []byte) {
	t.Helper()

	err := c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put(key, []byte("{not json"))
	})
	require.NoError(t, err)
}

func TestSessionsRoundTrip(t *testing.T) {
	c := newTestClient(t)

	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

	sessions := []models.PracticeSession{
		{
			ID:                 "sess-1",
			UserID:             models.DefaultUserID,
			StartTime:          start,
			EndTime:            start.Add(time.Hour),
			DefaultDiscsPerSet: 10,
			Sets: []models.PracticeSet{
				{
					ID:          "set-1",
					SessionID:   "sess-1",
					StartTime:   start,
					EndTime:     start.Add(10 * time.Minute),
					DiscsScored: 8,
					DiscsThrown: 10,
					Distance:    20,
					PuttResults: []models.PuttResult{
						models.PuttMade, models.PuttMissed,
					},
				},
			},
		},
	}

	require.NoError(t, c.SaveSessions(sessions))

	got, err := c.Sessions()
	require.NoError(t, err)

	assert.Equal(t, sessions, got)
}

func TestSessions_EmptyStore(t *testing.T) {
	c := newTestClient(t)

	got, err := c.Sessions()

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSessions_MalformedRecord(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.SaveSessions([]models.PracticeSession{{ID: "a"}}))

	corruptRecord(t, c, sessionsKey)

	got, err := c.Sessions()

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSettings_Defaults(t *testing.T) {
	c := newTestClient(t)

	settings, err := c.Settings()

	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
	assert.Equal(t, 10, settings.LastDiscsPerSet)
}

func TestSettingsRoundTrip(t *testing.T) {
	c := newTestClient(t)

	want := models.SessionSettings{
		LastDiscsPerSet: 15,
		LastDistance:    25,
	}

	require.NoError(t, c.SaveSettings(want))

	got, err := c.Settings()
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestSettings_MalformedRecord(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.SaveSettings(models.SessionSettings{
		LastDiscsPerSet: 15,
	}))

	corruptRecord(t, c, settingsKey)

	got, err := c.Settings()

	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestSecondClientCannotOpenLockedDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "putt.db")

	first, err := NewClient(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = first.Close()
	})

	_, err = NewClient(dbPath)

	assert.ErrorIs(t, err, errPuttRunning)
}

package session

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-Faulkners/putttracker/internal/models"
	"github.com/The-Faulkners/putttracker/store"
)

func newTestRepo(t *testing.T) (*Repository, *store.Memory) {
	t.Helper()

	mem := store.NewMemory()

	repo := NewRepository(mem)

	clock := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	var n int
	repo.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}

	return repo, mem
}

func TestCreate(t *testing.T) {
	repo, mem := newTestRepo(t)

	sess, err := repo.Create(5)
	require.NoError(t, err)

	assert.Equal(t, "id-1", sess.ID)
	assert.Equal(t, models.DefaultUserID, sess.UserID)
	assert.Equal(t, 5, sess.DefaultDiscsPerSet)
	assert.False(t, sess.StartTime.IsZero())
	assert.False(t, sess.Completed())

	stored, err := repo.Session(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, *sess, *stored)

	settings, err := mem.Settings()
	require.NoError(t, err)
	assert.Equal(t, 5, settings.LastDiscsPerSet)
}

func TestSession_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Session("missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEnd(t *testing.T) {
	repo, _ := newTestRepo(t)

	sess, err := repo.Create(10)
	require.NoError(t, err)

	require.NoError(t, repo.End(sess.ID))

	stored, err := repo.Session(sess.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed())
	assert.True(t, stored.EndTime.After(stored.StartTime))
}

func TestEnd_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.End("missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepo(t)

	first, err := repo.Create(10)
	require.NoError(t, err)

	second, err := repo.Create(10)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(first.ID))

	_, err = repo.Session(first.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = repo.Session(second.ID)
	assert.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Delete("missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAppendSet(t *testing.T) {
	repo, mem := newTestRepo(t)

	sess, err := repo.Create(10)
	require.NoError(t, err)

	set := repo.NewSet(sess, 20)
	set.DiscsScored = 8
	set.DiscsThrown = 10

	require.NoError(t, repo.AppendSet(sess.ID, set))

	stored, err := repo.Session(sess.ID)
	require.NoError(t, err)
	require.Len(t, stored.Sets, 1)
	assert.Equal(t, sess.ID, stored.Sets[0].SessionID)
	assert.Equal(t, 20, stored.Sets[0].Distance)
	assert.False(t, stored.Sets[0].EndTime.IsZero())

	settings, err := mem.Settings()
	require.NoError(t, err)
	assert.Equal(t, 20, settings.LastDistance)
}

func TestAppendSet_UnrecordedDistanceKeepsSettings(t *testing.T) {
	repo, mem := newTestRepo(t)

	sess, err := repo.Create(10)
	require.NoError(t, err)

	require.NoError(t, repo.AppendSet(sess.ID, repo.NewSet(sess, 0)))

	settings, err := mem.Settings()
	require.NoError(t, err)
	assert.Equal(t, 0, settings.LastDistance)
}

func TestUpdateSet(t *testing.T) {
	repo, _ := newTestRepo(t)

	sess, err := repo.Create(10)
	require.NoError(t, err)

	set := repo.NewSet(sess, 15)
	set.DiscsScored = 7
	set.DiscsThrown = 10
	set.PuttResults = []models.PuttResult{models.PuttMade, models.PuttMissed}

	require.NoError(t, repo.AppendSet(sess.ID, set))

	distance := 25

	err = repo.UpdateSet(sess.ID, set.ID, SetUpdate{
		DiscsScored: 9,
		DiscsThrown: 10,
		Distance:    &distance,
	})
	require.NoError(t, err)

	stored, err := repo.Session(sess.ID)
	require.NoError(t, err)
	require.Len(t, stored.Sets, 1)

	got := stored.Sets[0]
	assert.Equal(t, 9, got.DiscsScored)
	assert.Equal(t, 10, got.DiscsThrown)
	assert.Equal(t, 25, got.Distance)
	// Untouched fields survive the edit.
	assert.Equal(t, set.ID, got.ID)
	assert.Equal(t, set.StartTime, got.StartTime)
	assert.Equal(t, set.PuttResults, got.PuttResults)
}

func TestUpdateSet_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	sess, err := repo.Create(10)
	require.NoError(t, err)

	err = repo.UpdateSet("missing", "id", SetUpdate{})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = repo.UpdateSet(sess.ID, "missing", SetUpdate{})
	assert.ErrorIs(t, err, ErrSetNotFound)
}

func TestOpen(t *testing.T) {
	repo, _ := newTestRepo(t)

	open, err := repo.Open()
	require.NoError(t, err)
	assert.Nil(t, open)

	sess, err := repo.Create(10)
	require.NoError(t, err)

	open, err = repo.Open()
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, sess.ID, open.ID)

	require.NoError(t, repo.End(sess.ID))

	open, err = repo.Open()
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestCompleted(t *testing.T) {
	repo, _ := newTestRepo(t)

	first, err := repo.Create(10)
	require.NoError(t, err)
	require.NoError(t, repo.End(first.ID))

	second, err := repo.Create(10)
	require.NoError(t, err)
	require.NoError(t, repo.End(second.ID))

	// Still open, so it must not show up.
	_, err = repo.Create(10)
	require.NoError(t, err)

	completed, err := repo.Completed()
	require.NoError(t, err)

	require.Len(t, completed, 2)
	assert.Equal(t, second.ID, completed[0].ID)
	assert.Equal(t, first.ID, completed[1].ID)
}

func TestOverall(t *testing.T) {
	repo, _ := newTestRepo(t)

	sess, err := repo.Create(10)
	require.NoError(t, err)

	set := repo.NewSet(sess, 20)
	set.DiscsScored = 8
	set.DiscsThrown = 10

	require.NoError(t, repo.AppendSet(sess.ID, set))
	require.NoError(t, repo.End(sess.ID))

	summary, err := repo.Overall()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalSessions)
	assert.Equal(t, 8, summary.TotalPuttsMade)
	assert.Equal(t, 10, summary.TotalPuttsThrown)
}

func TestWriteFailurePropagates(t *testing.T) {
	repo, mem := newTestRepo(t)

	mem.WriteErr = errors.New("disk full")

	_, err := repo.Create(10)

	assert.ErrorContains(t, err, "disk full")
}

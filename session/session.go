// Package session manages the lifecycle of putting practice sessions
package session

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/The-Faulkners/putttracker/internal/models"
	"github.com/The-Faulkners/putttracker/stats"
	"github.com/The-Faulkners/putttracker/store"
)

// Repository performs CRUD operations over sessions and their nested sets.
// Every mutation re-reads the stored session list immediately before
// applying itself so that writes from other call sites remain visible.
// Two writers interleaving between a reload and a persist can still drop
// an update; the last writer wins.
type Repository struct {
	store store.Store
	now   func() time.Time
	newID func() string
}

// NewRepository returns a Repository backed by the given store.
func NewRepository(s store.Store) *Repository {
	return &Repository{
		store: s,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create starts a new open session with no sets and persists it. The
// stored settings are updated so the next session defaults to the same
// set size.
func (r *Repository) Create(discsPerSet int) (*models.PracticeSession, error) {
	sessions, err := r.store.Sessions()
	if err != nil {
		return nil, err
	}

	sess := models.PracticeSession{
		ID:                 r.newID(),
		UserID:             models.DefaultUserID,
		StartTime:          r.now(),
		DefaultDiscsPerSet: discsPerSet,
	}

	sessions = append(sessions, sess)

	if err := r.store.SaveSessions(sessions); err != nil {
		return nil, err
	}

	settings, err := r.store.Settings()
	if err != nil {
		return nil, err
	}

	settings.LastDiscsPerSet = discsPerSet

	if err := r.store.SaveSettings(settings); err != nil {
		return nil, err
	}

	return &sess, nil
}

// Update replaces the stored session matching sess.ID in full.
func (r *Repository) Update(sess *models.PracticeSession) error {
	sessions, err := r.store.Sessions()
	if err != nil {
		return err
	}

	i := indexOf(sessions, sess.ID)
	if i == -1 {
		return ErrSessionNotFound
	}

	sessions[i] = *sess

	return r.store.SaveSessions(sessions)
}

// End marks the session as completed by stamping its end time.
func (r *Repository) End(id string) error {
	sessions, err := r.store.Sessions()
	if err != nil {
		return err
	}

	i := indexOf(sessions, id)
	if i == -1 {
		return ErrSessionNotFound
	}

	sessions[i].EndTime = r.now()

	return r.store.SaveSessions(sessions)
}

// Delete removes the session and all of its sets.
func (r *Repository) Delete(id string) error {
	sessions, err := r.store.Sessions()
	if err != nil {
		return err
	}

	i := indexOf(sessions, id)
	if i == -1 {
		return ErrSessionNotFound
	}

	sessions = slices.Delete(sessions, i, i+1)

	return r.store.SaveSessions(sessions)
}

// NewSet builds an in-progress set seeded from the session's default set
// size. The set is not persisted until it is appended.
func (r *Repository) NewSet(
	sess *models.PracticeSession,
	distance int,
) models.PracticeSet {
	return models.PracticeSet{
		ID:          r.newID(),
		SessionID:   sess.ID,
		StartTime:   r.now(),
		DiscsThrown: sess.DefaultDiscsPerSet,
		Distance:    distance,
	}
}

// AppendSet appends a completed set to the session and persists it. The
// set's end time is stamped if the caller has not done so already, and
// the stored settings remember the distance for the next set.
func (r *Repository) AppendSet(sessionID string, set models.PracticeSet) error {
	sessions, err := r.store.Sessions()
	if err != nil {
		return err
	}

	i := indexOf(sessions, sessionID)
	if i == -1 {
		return ErrSessionNotFound
	}

	if set.EndTime.IsZero() {
		set.EndTime = r.now()
	}

	set.SessionID = sessionID

	sessions[i].Sets = append(sessions[i].Sets, set)

	if err := r.store.SaveSessions(sessions); err != nil {
		return err
	}

	if set.Distance > 0 {
		settings, err := r.store.Settings()
		if err != nil {
			return err
		}

		settings.LastDistance = set.Distance

		return r.store.SaveSettings(settings)
	}

	return nil
}

// SetUpdate lists the fields a corrective edit may rewrite. The set's
// id, session id, and start time are never touched.
type SetUpdate struct {
	// PuttResults replaces the set's result log when non-nil.
	PuttResults []models.PuttResult
	// Distance replaces the set's distance when non-nil.
	Distance    *int
	DiscsScored int
	DiscsThrown int
}

// UpdateSet applies a corrective edit to an existing set.
func (r *Repository) UpdateSet(
	sessionID, setID string,
	upd SetUpdate,
) error {
	sessions, err := r.store.Sessions()
	if err != nil {
		return err
	}

	i := indexOf(sessions, sessionID)
	if i == -1 {
		return ErrSessionNotFound
	}

	sets := sessions[i].Sets

	j := slices.IndexFunc(sets, func(s models.PracticeSet) bool {
		return s.ID == setID
	})
	if j == -1 {
		return ErrSetNotFound
	}

	sets[j].DiscsScored = upd.DiscsScored
	sets[j].DiscsThrown = upd.DiscsThrown

	if upd.PuttResults != nil {
		sets[j].PuttResults = upd.PuttResults
	}

	if upd.Distance != nil {
		sets[j].Distance = *upd.Distance
	}

	return r.store.SaveSessions(sessions)
}

// Session returns the stored session matching the id. The list is always
// re-read from the store so concurrent writers are visible.
func (r *Repository) Session(id string) (*models.PracticeSession, error) {
	sessions, err := r.store.Sessions()
	if err != nil {
		return nil, err
	}

	i := indexOf(sessions, id)
	if i == -1 {
		return nil, ErrSessionNotFound
	}

	return &sessions[i], nil
}

// Open returns the most recently started session that has not been ended
// yet, or nil when every stored session is completed.
func (r *Repository) Open() (*models.PracticeSession, error) {
	sessions, err := r.store.Sessions()
	if err != nil {
		return nil, err
	}

	for i := len(sessions) - 1; i >= 0; i-- {
		if !sessions[i].Completed() {
			return &sessions[i], nil
		}
	}

	return nil, nil
}

// Completed returns all completed sessions ordered by start time, most
// recent first. The sort is stable, so sessions sharing a start time keep
// their stored order.
func (r *Repository) Completed() ([]models.PracticeSession, error) {
	sessions, err := r.store.Sessions()
	if err != nil {
		return nil, err
	}

	var completed []models.PracticeSession

	for i := range sessions {
		if sessions[i].Completed() {
			completed = append(completed, sessions[i])
		}
	}

	slices.SortStableFunc(completed, func(a, b models.PracticeSession) int {
		return cmp.Compare(b.StartTime.UnixNano(), a.StartTime.UnixNano())
	})

	return completed, nil
}

// Overall computes the aggregate statistics over all completed sessions.
func (r *Repository) Overall() (stats.Summary, error) {
	completed, err := r.Completed()
	if err != nil {
		return stats.Summary{}, err
	}

	return stats.Overall(completed), nil
}

func indexOf(sessions []models.PracticeSession, id string) int {
	return slices.IndexFunc(sessions, func(s models.PracticeSession) bool {
		return s.ID == id
	})
}

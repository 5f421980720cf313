// Package models defines the records persisted by the putt tracker
package models

import "time"

// DefaultUserID identifies the owner of every session in this
// single-user application.
const DefaultUserID = "default-user"

// PuttResult is the outcome of a single putt.
type PuttResult string

const (
	PuttMade   PuttResult = "made"
	PuttMissed PuttResult = "missed"
)

// PracticeSet is one scored round of putts thrown from a single distance.
type PracticeSet struct {
	// StartTime marks when the set began and is fixed at creation.
	StartTime time.Time `json:"start_time"`
	// EndTime is set when the set is completed. A zero value means the
	// set is still in progress.
	EndTime   time.Time `json:"end_time"`
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	// PuttResults records the outcome of each putt in throw order. It is
	// optional: sets logged with a plain made/thrown tally leave it empty.
	PuttResults []PuttResult `json:"putt_results,omitempty"`
	DiscsThrown int          `json:"discs_thrown"`
	DiscsScored int          `json:"discs_scored"`
	// Distance is the putting distance in feet. Zero means unrecorded.
	Distance int `json:"distance,omitempty"`
}

// Accuracy returns the percentage of putts made in the set, or 0 when
// nothing was thrown.
func (s *PracticeSet) Accuracy() float64 {
	if s.DiscsThrown == 0 {
		return 0
	}

	return float64(s.DiscsScored) / float64(s.DiscsThrown) * 100
}

// LongestRun returns the longest streak of consecutive made putts in the
// set's result log. Sets without a result log report 0.
func (s *PracticeSet) LongestRun() int {
	var longest, current int

	for _, r := range s.PuttResults {
		if r != PuttMade {
			current = 0
			continue
		}

		current++

		if current > longest {
			longest = current
		}
	}

	return longest
}

// PracticeSession is a bounded practice outing composed of sets. A session
// exclusively owns its sets: deleting the session removes them all.
type PracticeSession struct {
	StartTime time.Time `json:"start_time"`
	// EndTime is set when the session is ended. A zero value means the
	// session is still open.
	EndTime time.Time `json:"end_time"`
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	// Sets are stored in insertion order, which is also chronological
	// order.
	Sets               []PracticeSet `json:"sets"`
	DefaultDiscsPerSet int           `json:"default_discs_per_set"`
}

// Completed reports whether the session has been ended. Only completed
// sessions count toward historical statistics.
func (s *PracticeSession) Completed() bool {
	return !s.EndTime.IsZero()
}

// Totals sums the discs thrown and scored across all sets in the session.
func (s *PracticeSession) Totals() (thrown, scored int) {
	for i := range s.Sets {
		thrown += s.Sets[i].DiscsThrown
		scored += s.Sets[i].DiscsScored
	}

	return
}

// Accuracy returns the session-level putting accuracy as a percentage,
// or 0 when no discs were thrown.
func (s *PracticeSession) Accuracy() float64 {
	thrown, scored := s.Totals()

	if thrown == 0 {
		return 0
	}

	return float64(scored) / float64(thrown) * 100
}

// SessionSettings holds the last-used preferences that seed the next
// session and set.
type SessionSettings struct {
	LastDiscsPerSet int `json:"last_discs_per_set"`
	LastDistance    int `json:"last_distance,omitempty"`
}

// DefaultSettings returns the settings in effect before any session has
// been recorded.
func DefaultSettings() SessionSettings {
	return SessionSettings{
		LastDiscsPerSet: 10,
	}
}

package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/The-Faulkners/putttracker/internal/models"
)

var baseTime = time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

// newSession builds a completed single-set session. Sessions built with
// increasing n start later, so listing them in reverse builds the
// most-recent-first order the repository returns.
func newSession(n, scored, thrown int) models.PracticeSession {
	start := baseTime.Add(time.Duration(n) * 24 * time.Hour)

	return models.PracticeSession{
		ID:        string(rune('a' + n)),
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Sets: []models.PracticeSet{
			{DiscsScored: scored, DiscsThrown: thrown},
		},
	}
}

func TestOverall(t *testing.T) {
	sessions := []models.PracticeSession{
		newSession(2, 9, 10),
		newSession(1, 8, 10),
		newSession(0, 6, 10),
	}

	s := Overall(sessions)

	assert.Equal(t, 3, s.TotalSessions)
	assert.Equal(t, 3, s.TotalSets)
	assert.Equal(t, 23, s.TotalPuttsMade)
	assert.Equal(t, 30, s.TotalPuttsThrown)
	assert.InDelta(t, 76.66, s.AverageAccuracy, 0.01)
	assert.Equal(t, 2, s.CurrentStreak)
}

func TestOverall_Empty(t *testing.T) {
	s := Overall(nil)

	assert.Equal(t, 0, s.TotalSessions)
	assert.Equal(t, 0.0, s.AverageAccuracy)
	assert.Equal(t, 0, s.CurrentStreak)
}

func TestOverall_StreakBrokenByRecentSession(t *testing.T) {
	sessions := []models.PracticeSession{
		newSession(2, 5, 10),
		newSession(1, 9, 10),
		newSession(0, 9, 10),
	}

	s := Overall(sessions)

	assert.Equal(t, 0, s.CurrentStreak)
}

func TestOverall_ZeroThrownSession(t *testing.T) {
	sessions := []models.PracticeSession{
		newSession(0, 0, 0),
	}

	s := Overall(sessions)

	assert.Equal(t, 0.0, s.AverageAccuracy)
	assert.Equal(t, 0, s.CurrentStreak)
}

func TestTrend(t *testing.T) {
	t.Run("too few sessions", func(t *testing.T) {
		sessions := []models.PracticeSession{
			newSession(4, 9, 10),
			newSession(3, 9, 10),
			newSession(2, 9, 10),
			newSession(1, 9, 10),
			newSession(0, 9, 10),
		}

		_, ok := Trend(sessions)

		assert.False(t, ok)
	})

	t.Run("improving", func(t *testing.T) {
		var sessions []models.PracticeSession

		// Five recent sessions at 90%, five before them at 60%.
		for n := 9; n >= 5; n-- {
			sessions = append(sessions, newSession(n, 9, 10))
		}

		for n := 4; n >= 0; n-- {
			sessions = append(sessions, newSession(n, 6, 10))
		}

		delta, ok := Trend(sessions)

		assert.True(t, ok)
		assert.InDelta(t, 30.0, delta, 0.01)
	})

	t.Run("partial previous group", func(t *testing.T) {
		var sessions []models.PracticeSession

		for n := 6; n >= 2; n-- {
			sessions = append(sessions, newSession(n, 8, 10))
		}

		sessions = append(sessions, newSession(1, 4, 10))
		sessions = append(sessions, newSession(0, 4, 10))

		delta, ok := Trend(sessions)

		assert.True(t, ok)
		assert.InDelta(t, 40.0, delta, 0.01)
	})
}

func TestBest(t *testing.T) {
	t.Run("no sessions", func(t *testing.T) {
		_, ok := Best(nil)

		assert.False(t, ok)
	})

	t.Run("highest accuracy wins", func(t *testing.T) {
		sessions := []models.PracticeSession{
			newSession(2, 7, 10),
			newSession(1, 9, 10),
			newSession(0, 8, 10),
		}

		best, ok := Best(sessions)

		assert.True(t, ok)
		assert.Equal(t, sessions[1].ID, best.Session.ID)
		assert.InDelta(t, 90.0, best.Accuracy, 0.01)
	})

	t.Run("ties go to the most recent", func(t *testing.T) {
		sessions := []models.PracticeSession{
			newSession(1, 9, 10),
			newSession(0, 9, 10),
		}

		best, ok := Best(sessions)

		assert.True(t, ok)
		assert.Equal(t, sessions[0].ID, best.Session.ID)
	})
}

func TestLongestMadeStreak(t *testing.T) {
	made := models.PuttMade
	missed := models.PuttMissed

	sessions := []models.PracticeSession{
		{
			Sets: []models.PracticeSet{
				{
					PuttResults: []models.PuttResult{
						made, made, missed, made, made, made,
					},
				},
			},
		},
	}

	assert.Equal(t, 3, LongestMadeStreak(sessions))
}

func TestLongestMadeStreak_ResetsAtSetBoundaries(t *testing.T) {
	made := models.PuttMade

	sessions := []models.PracticeSession{
		{
			Sets: []models.PracticeSet{
				{PuttResults: []models.PuttResult{made, made}},
				{PuttResults: []models.PuttResult{made}},
			},
		},
	}

	// A run ends with its set, so two sets of 2 and 1 made putts yield
	// a longest run of 2, never 3.
	assert.Equal(t, 2, LongestMadeStreak(sessions))
}

func TestLongestMadeStreak_NoResultLogs(t *testing.T) {
	sessions := []models.PracticeSession{
		newSession(0, 10, 10),
	}

	assert.Equal(t, 0, LongestMadeStreak(sessions))
}

func TestPersonalBests(t *testing.T) {
	made := models.PuttMade
	missed := models.PuttMissed

	sessions := []models.PracticeSession{
		{
			Sets: []models.PracticeSet{
				{
					Distance:    15,
					DiscsScored: 8,
					DiscsThrown: 10,
					PuttResults: []models.PuttResult{
						made, made, made, made, missed,
						made, made, missed, made, made,
					},
				},
				{Distance: 25, DiscsScored: 5, DiscsThrown: 10},
				// Unrecorded distance stays out of the buckets.
				{Distance: 0, DiscsScored: 10, DiscsThrown: 10},
			},
		},
		{
			Sets: []models.PracticeSet{
				{Distance: 15, DiscsScored: 9, DiscsThrown: 10},
			},
		},
	}

	bests := PersonalBests(sessions)

	assert.Len(t, bests, 2)

	assert.Equal(t, 15, bests[0].Distance)
	assert.InDelta(t, 90.0, bests[0].BestAccuracy, 0.01)
	assert.Equal(t, 17, bests[0].TotalMade)
	assert.Equal(t, 20, bests[0].TotalThrown)
	assert.Equal(t, 4, bests[0].BestStreak)

	assert.Equal(t, 25, bests[1].Distance)
	assert.InDelta(t, 50.0, bests[1].BestAccuracy, 0.01)
}

func TestNewReport(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		r := NewReport(nil)

		assert.Nil(t, r.Best)
		assert.Nil(t, r.Trend)
		assert.Empty(t, r.PersonalBests)
	})

	t.Run("round trips through JSON", func(t *testing.T) {
		sessions := []models.PracticeSession{
			newSession(1, 9, 10),
			newSession(0, 6, 10),
		}

		r := NewReport(sessions)

		b, err := r.ToJSON()

		assert.NoError(t, err)
		assert.Contains(t, string(b), "total_sessions")
	})
}

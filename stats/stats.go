// Package stats computes putting statistics over completed sessions
package stats

import (
	"cmp"
	"slices"

	"github.com/The-Faulkners/putttracker/internal/models"
)

// hotStreakThreshold is the session accuracy, in percent, that keeps a
// practice streak alive.
const hotStreakThreshold = 70.0

// recentWindow is how many of the most recent sessions form each side of
// the trend comparison.
const recentWindow = 5

// Summary aggregates the headline numbers across completed sessions.
type Summary struct {
	TotalSessions    int     `json:"total_sessions"`
	TotalSets        int     `json:"total_sets"`
	TotalPuttsMade   int     `json:"total_putts_made"`
	TotalPuttsThrown int     `json:"total_putts_thrown"`
	AverageAccuracy  float64 `json:"average_accuracy"`
	// CurrentStreak counts consecutive recent sessions at or above the
	// hot streak threshold, starting from the most recent.
	CurrentStreak int `json:"current_streak"`
}

// BestSession pairs a session with its accuracy.
type BestSession struct {
	Session  models.PracticeSession `json:"session"`
	Accuracy float64                `json:"accuracy"`
}

// DistanceBest aggregates every set thrown from one distance.
type DistanceBest struct {
	// Distance is the putting distance in feet.
	Distance int `json:"distance"`
	// BestAccuracy is the accuracy of the single best set at this
	// distance.
	BestAccuracy float64 `json:"best_accuracy"`
	TotalMade    int     `json:"total_made"`
	TotalThrown  int     `json:"total_thrown"`
	// BestStreak is the longest made-run inside any single set at this
	// distance.
	BestStreak int `json:"best_streak"`
}

// Overall computes the headline statistics. Sessions must be ordered most
// recent first, as the repository returns them, so the streak count reads
// backwards through time.
func Overall(sessions []models.PracticeSession) Summary {
	s := Summary{
		TotalSessions: len(sessions),
	}

	for i := range sessions {
		s.TotalSets += len(sessions[i].Sets)

		thrown, scored := sessions[i].Totals()
		s.TotalPuttsThrown += thrown
		s.TotalPuttsMade += scored
	}

	if s.TotalPuttsThrown > 0 {
		s.AverageAccuracy = float64(
			s.TotalPuttsMade,
		) / float64(s.TotalPuttsThrown) * 100
	}

	for i := range sessions {
		if sessions[i].Accuracy() < hotStreakThreshold {
			break
		}

		s.CurrentStreak++
	}

	return s
}

// Trend compares the mean accuracy of the most recent sessions against
// the group before them and returns the difference in percentage points.
// It reports false when there are not enough sessions to form both
// groups.
func Trend(sessions []models.PracticeSession) (float64, bool) {
	if len(sessions) < 2 {
		return 0, false
	}

	recent := sessions[:min(recentWindow, len(sessions))]

	var previous []models.PracticeSession

	if len(sessions) > recentWindow {
		previous = sessions[recentWindow:min(2*recentWindow, len(sessions))]
	}

	if len(previous) == 0 {
		return 0, false
	}

	return meanAccuracy(recent) - meanAccuracy(previous), true
}

// Best returns the completed session with the highest accuracy. Ties go
// to the session encountered first, i.e. the most recent one. It reports
// false when no sessions exist.
func Best(sessions []models.PracticeSession) (BestSession, bool) {
	if len(sessions) == 0 {
		return BestSession{}, false
	}

	best := BestSession{
		Session:  sessions[0],
		Accuracy: sessions[0].Accuracy(),
	}

	for i := range sessions[1:] {
		sess := sessions[i+1]

		if a := sess.Accuracy(); a > best.Accuracy {
			best = BestSession{Session: sess, Accuracy: a}
		}
	}

	return best, true
}

// LongestMadeStreak returns the longest run of consecutive made putts
// recorded in any single set. A run ends at a miss or at the set
// boundary, so it never spans two sets. Sets without a result log do
// not contribute.
func LongestMadeStreak(sessions []models.PracticeSession) int {
	var longest int

	for i := range sessions {
		for j := range sessions[i].Sets {
			if run := sessions[i].Sets[j].LongestRun(); run > longest {
				longest = run
			}
		}
	}

	return longest
}

// PersonalBests buckets every set by distance and returns the per-distance
// aggregates ordered by distance, nearest first. Sets with no recorded
// distance are skipped.
func PersonalBests(sessions []models.PracticeSession) []DistanceBest {
	byDistance := make(map[int]*DistanceBest)

	for i := range sessions {
		for j := range sessions[i].Sets {
			set := &sessions[i].Sets[j]

			if set.Distance == 0 {
				continue
			}

			entry, ok := byDistance[set.Distance]
			if !ok {
				entry = &DistanceBest{Distance: set.Distance}
				byDistance[set.Distance] = entry
			}

			entry.TotalMade += set.DiscsScored
			entry.TotalThrown += set.DiscsThrown

			if a := set.Accuracy(); a > entry.BestAccuracy {
				entry.BestAccuracy = a
			}

			if run := set.LongestRun(); run > entry.BestStreak {
				entry.BestStreak = run
			}
		}
	}

	bests := make([]DistanceBest, 0, len(byDistance))

	for _, entry := range byDistance {
		bests = append(bests, *entry)
	}

	slices.SortFunc(bests, func(a, b DistanceBest) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return bests
}

func meanAccuracy(sessions []models.PracticeSession) float64 {
	var sum float64

	for i := range sessions {
		sum += sessions[i].Accuracy()
	}

	return sum / float64(len(sessions))
}

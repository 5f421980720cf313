package practice

import (
	"strings"

	"github.com/The-Faulkners/putttracker/internal/apperr"
	"github.com/The-Faulkners/putttracker/internal/models"
)

// Outcome classifies a spoken or typed putt keyword.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeMade
	OutcomeMissed
	OutcomeUndo
)

var errUnknownKeyword = &apperr.Error{
	Message: "unrecognized putt result: %q",
}

// The keyword lists accept the words people actually say while putting,
// not just the canonical made/missed pair.
var (
	madeWords = []string{
		"made", "make", "m", "yes", "in", "good", "hit", "nice",
	}
	missedWords = []string{
		"missed", "miss", "x", "no", "out", "bad", "nope",
	}
	undoWords = []string{
		"undo", "back", "oops", "cancel",
	}
)

// MatchOutcome classifies a single keyword, ignoring case and
// surrounding whitespace.
func MatchOutcome(word string) Outcome {
	word = strings.ToLower(strings.TrimSpace(word))

	for _, w := range madeWords {
		if word == w {
			return OutcomeMade
		}
	}

	for _, w := range missedWords {
		if word == w {
			return OutcomeMissed
		}
	}

	for _, w := range undoWords {
		if word == w {
			return OutcomeUndo
		}
	}

	return OutcomeUnknown
}

// ParseResults turns a whitespace-separated keyword sequence into a putt
// result log. An undo keyword removes the most recent result, so
// "made made oops missed" yields one made and one missed putt. Unknown
// keywords fail the whole parse.
func ParseResults(input string) ([]models.PuttResult, error) {
	var results []models.PuttResult

	for _, word := range strings.Fields(input) {
		switch MatchOutcome(word) {
		case OutcomeMade:
			results = append(results, models.PuttMade)
		case OutcomeMissed:
			results = append(results, models.PuttMissed)
		case OutcomeUndo:
			if len(results) > 0 {
				results = results[:len(results)-1]
			}
		case OutcomeUnknown:
			return nil, errUnknownKeyword.Fmt(word)
		}
	}

	return results, nil
}

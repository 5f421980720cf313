// Package practice runs the interactive putt logging session
package practice

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/The-Faulkners/putttracker/internal/config"
	"github.com/The-Faulkners/putttracker/internal/models"
	"github.com/The-Faulkners/putttracker/session"
)

type state int

const (
	// stateSet is an in-progress set accepting putt results.
	stateSet state = iota
	// stateBreak is the pause between a completed set and the next one.
	stateBreak
)

type keymap struct {
	made    key.Binding
	missed  key.Binding
	undo    key.Binding
	endSet  key.Binding
	nextSet key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	made: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "made"),
	),
	missed: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "missed"),
	),
	undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	endSet: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "complete set"),
	),
	nextSet: key.NewBinding(
		key.WithKeys("n", "enter"),
		key.WithHelp("n", "next set"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "end session"),
	),
}

type styles struct {
	base      lipgloss.Style
	title     lipgloss.Style
	made      lipgloss.Style
	missed    lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
}

func newStyles() styles {
	return styles{
		base: lipgloss.NewStyle().Padding(1, 2),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}),
		made:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		missed:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

// Model drives the putt logging loop for one session. Each set accepts
// made and missed keystrokes until the set size is reached or the set is
// completed early, then pauses until the next set starts or the session
// ends.
type Model struct {
	repo    *session.Repository
	cfg     *config.Config
	sess    *models.PracticeSession
	set     models.PracticeSet
	results []models.PuttResult
	state   state
	// setsLogged counts the sets persisted during this run.
	setsLogged    int
	sessionMade   int
	sessionThrown int
	elapsed       time.Duration
	help          help.Model
	keymap        keymap
	styles        styles
	err           error
}

// New prepares a logging model for the given session. The first set
// starts immediately at the given distance.
func New(
	repo *session.Repository,
	cfg *config.Config,
	sess *models.PracticeSession,
	distance int,
) *Model {
	m := &Model{
		repo:   repo,
		cfg:    cfg,
		sess:   sess,
		help:   help.New(),
		keymap: defaultKeymap,
		styles: newStyles(),
	}

	// A resumed session carries its earlier totals forward.
	thrown, scored := sess.Totals()
	m.sessionThrown = thrown
	m.sessionMade = scored

	m.startSet(distance)

	return m
}

// SetsLogged reports how many sets were persisted before the program
// exited.
func (m *Model) SetsLogged() int {
	return m.setsLogged
}

// Err returns the first persistence failure encountered, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) startSet(distance int) {
	m.set = m.repo.NewSet(m.sess, distance)
	m.results = nil
	m.state = stateSet
}

func (m *Model) madeCount() int {
	var n int

	for _, r := range m.results {
		if r == models.PuttMade {
			n++
		}
	}

	return n
}

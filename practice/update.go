package practice

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/The-Faulkners/putttracker/internal/models"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.elapsed = time.Since(m.sess.StartTime).Round(time.Second)
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.quit) {
		if m.state == stateSet && len(m.results) > 0 {
			m.completeSet()
		}

		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	switch m.state {
	case stateSet:
		return m.handleSetKey(msg)
	case stateBreak:
		return m.handleBreakKey(msg)
	}

	return m, nil
}

func (m *Model) handleSetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.made):
		m.record(models.PuttMade)

	case key.Matches(msg, m.keymap.missed):
		m.record(models.PuttMissed)

	case key.Matches(msg, m.keymap.undo):
		if len(m.results) > 0 {
			m.results = m.results[:len(m.results)-1]
		}

	case key.Matches(msg, m.keymap.endSet):
		if len(m.results) > 0 {
			m.completeSet()
		}
	}

	return m, nil
}

func (m *Model) handleBreakKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.nextSet) {
		m.startSet(m.set.Distance)
	}

	return m, nil
}

// record logs one putt and completes the set automatically when the
// target set size is reached.
func (m *Model) record(r models.PuttResult) {
	m.results = append(m.results, r)

	if len(m.results) >= m.sess.DefaultDiscsPerSet {
		m.completeSet()
	}
}

// completeSet persists the current set and moves to the break screen. A
// failed write keeps the results in memory so nothing is silently lost.
func (m *Model) completeSet() {
	set := m.set
	set.PuttResults = m.results
	set.DiscsThrown = len(m.results)
	set.DiscsScored = m.madeCount()

	if err := m.repo.AppendSet(m.sess.ID, set); err != nil {
		if m.err == nil {
			m.err = err
		}

		return
	}

	m.setsLogged++
	m.sessionMade += set.DiscsScored
	m.sessionThrown += set.DiscsThrown
	m.state = stateBreak
}

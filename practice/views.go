package practice

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/The-Faulkners/putttracker/internal/models"
	"github.com/The-Faulkners/putttracker/internal/timeutil"
)

const (
	madeDot   = "●"
	missedDot = "○"
)

func (m *Model) View() string {
	var view string

	switch m.state {
	case stateSet:
		view = m.setView()
	case stateBreak:
		view = m.breakView()
	}

	if m.err != nil {
		view += "\n\n" + m.styles.missed.Render(m.err.Error())
	}

	return m.styles.base.Render(view)
}

func (m *Model) setView() string {
	var s strings.Builder

	s.WriteString(m.styles.title.Render("Putting practice"))
	s.WriteString("  ")
	s.WriteString(m.styles.hint.Render(m.elapsedView()))
	s.WriteString("\n\n")

	if m.set.Distance > 0 {
		s.WriteString(
			m.styles.secondary.Render(
				fmt.Sprintf("Putting from %d ft", m.set.Distance),
			),
		)
		s.WriteString("\n\n")
	}

	s.WriteString(m.resultDots())
	s.WriteString("\n\n")

	s.WriteString(fmt.Sprintf(
		"Putt %d of %d",
		len(m.results)+1,
		m.sess.DefaultDiscsPerSet,
	))

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		m.keymap.made,
		m.keymap.missed,
		m.keymap.undo,
		m.keymap.endSet,
		m.keymap.quit,
	}))

	return s.String()
}

func (m *Model) breakView() string {
	var s strings.Builder

	s.WriteString(m.styles.title.Render("Set complete"))
	s.WriteString("  ")
	s.WriteString(m.styles.hint.Render(m.elapsedView()))
	s.WriteString("\n\n")

	made := m.madeCount()
	thrown := len(m.results)

	var accuracy float64
	if thrown > 0 {
		accuracy = float64(made) / float64(thrown) * 100
	}

	s.WriteString(fmt.Sprintf(
		"This set: %s of %d (%d%%)\n",
		m.styles.made.Render(fmt.Sprintf("%d", made)),
		thrown,
		timeutil.Round(accuracy),
	))

	var sessionAccuracy float64
	if m.sessionThrown > 0 {
		sessionAccuracy = float64(
			m.sessionMade,
		) / float64(m.sessionThrown) * 100
	}

	s.WriteString(fmt.Sprintf(
		"Session: %s of %d (%d%%)",
		m.styles.made.Render(fmt.Sprintf("%d", m.sessionMade)),
		m.sessionThrown,
		timeutil.Round(sessionAccuracy),
	))

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		m.keymap.nextSet,
		m.keymap.quit,
	}))

	return s.String()
}

// resultDots renders the putts logged so far, one dot per throw.
func (m *Model) resultDots() string {
	if len(m.results) == 0 {
		return m.styles.hint.Render("No putts logged yet")
	}

	dots := make([]string, 0, len(m.results))

	for _, r := range m.results {
		if r == models.PuttMade {
			dots = append(dots, m.styles.made.Render(madeDot))
		} else {
			dots = append(dots, m.styles.missed.Render(missedDot))
		}
	}

	return strings.Join(dots, " ")
}

func (m *Model) elapsedView() string {
	mins, secs := timeutil.SecsToMinsAndSecs(m.elapsed.Seconds())

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

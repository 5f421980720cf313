package app

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/The-Faulkners/putttracker/internal/models"
	"github.com/The-Faulkners/putttracker/internal/timeutil"
	"github.com/The-Faulkners/putttracker/internal/ui"
)

const noSessionsMsg = "No completed sessions yet. Run 'putt' to start practicing"

// sessionTimeFormat returns the table date format for the configured
// clock style.
func sessionTimeFormat(twentyFourHour bool) string {
	if twentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(
	w io.Writer,
	sessions []models.PracticeSession,
	twentyFourHour bool,
) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		thrown, scored := sess.Totals()

		accuracy := ui.Green(
			fmt.Sprintf("%d%%", timeutil.Round(sess.Accuracy())),
		)
		if sess.Accuracy() < 50 {
			accuracy = ui.Red(
				fmt.Sprintf("%d%%", timeutil.Round(sess.Accuracy())),
			)
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format(sessionTimeFormat(twentyFourHour)),
			fmt.Sprintf("%d", len(sess.Sets)),
			fmt.Sprintf("%d/%d", scored, thrown),
			accuracy,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "DATE", "SETS", "PUTTS", "ACCURACY"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listSessions prints out a table of completed sessions.
func listSessions(
	sessions []models.PracticeSession,
	twentyFourHour bool,
) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(os.Stdout, sessions, twentyFourHour)

	return nil
}

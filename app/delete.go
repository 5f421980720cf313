package app

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/The-Faulkners/putttracker/internal/models"
	"github.com/The-Faulkners/putttracker/session"
)

// delSession deletes the specified session. It requests confirmation
// before proceeding with the operation.
func delSession(
	repo *session.Repository,
	sess *models.PracticeSession,
	twentyFourHour bool,
) error {
	printSessionsTable(os.Stdout, []models.PracticeSession{*sess}, twentyFourHour)

	warning := pterm.Warning.Sprint(
		"The above session will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(os.Stdout, warning)

	reader := bufio.NewReader(os.Stdin)

	_, _ = reader.ReadString('\n')

	return repo.Delete(sess.ID)
}

// confirmReplace warns that an import wipes the existing history and
// waits for confirmation.
func confirmReplace() bool {
	warning := pterm.Warning.Sprint(
		"Importing a backup replaces your entire practice history. Press ENTER to proceed, or Ctrl-C to cancel",
	)

	fmt.Fprint(os.Stdout, warning)

	reader := bufio.NewReader(os.Stdin)

	_, err := reader.ReadString('\n')

	return err == nil
}

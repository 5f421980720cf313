package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/The-Faulkners/putttracker/backup"
	"github.com/The-Faulkners/putttracker/internal/config"
	"github.com/The-Faulkners/putttracker/internal/log"
	"github.com/The-Faulkners/putttracker/internal/models"
	"github.com/The-Faulkners/putttracker/internal/timeutil"
	"github.com/The-Faulkners/putttracker/internal/ui"
	"github.com/The-Faulkners/putttracker/practice"
	"github.com/The-Faulkners/putttracker/session"
	"github.com/The-Faulkners/putttracker/stats"
	"github.com/The-Faulkners/putttracker/store"
)

const (
	envNoColor     = "NO_COLOR"
	envPuttNoColor = "PUTT_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithPromptConfig(config.ConfigFilePath()),
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

func openRepo() (*session.Repository, *store.Client, error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	return session.NewRepository(db), db, nil
}

// filteredSessions returns the completed sessions inside the time range
// given by the filtering flags.
func filteredSessions(
	ctx *cli.Context,
	repo *session.Repository,
) ([]models.PracticeSession, error) {
	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := repo.Completed()
	if err != nil {
		return nil, err
	}

	var filtered []models.PracticeSession

	for i := range completed {
		if filter.Includes(completed[i].StartTime) {
			filtered = append(filtered, completed[i])
		}
	}

	return filtered, nil
}

// sessionAt resolves a 1-based position from the list command into a
// completed session.
func sessionAt(
	repo *session.Repository,
	position int,
) (*models.PracticeSession, error) {
	completed, err := repo.Completed()
	if err != nil {
		return nil, err
	}

	if position < 1 || position > len(completed) {
		return nil, errInvalidPosition.Fmt(position)
	}

	return &completed[position-1], nil
}

// runSessionCmd executes the configured post-session command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// notify sends a desktop notification summarising the session.
func notify(cfg *config.Config, sess *models.PracticeSession) {
	if !cfg.Notifications.Enabled {
		return
	}

	thrown, scored := sess.Totals()

	msg := fmt.Sprintf(
		"You made %d of %d putts (%d%%)",
		scored,
		thrown,
		timeutil.Round(sess.Accuracy()),
	)

	err := beeep.Notify("Practice session complete", msg, "")
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

func printSessionSummary(sess *models.PracticeSession) {
	thrown, scored := sess.Totals()

	if thrown == 0 {
		pterm.Info.Println("Session ended with no putts logged")
		return
	}

	pterm.Info.Printfln(
		"Session complete: %s sets, %s of %s putts made (%s%%)",
		ui.Green(len(sess.Sets)),
		ui.Green(scored),
		ui.Green(thrown),
		ui.Green(timeutil.Round(sess.Accuracy())),
	)
}

// defaultAction starts the interactive practice session, resuming an
// open session when one exists.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	repo, db, err := openRepo()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	sess, err := repo.Open()
	if err != nil {
		return err
	}

	if sess != nil {
		pterm.Info.Println("Resuming your open practice session")
	} else {
		sess, err = repo.Create(cfg.Practice.DiscsPerSet)
		if err != nil {
			return err
		}
	}

	distance := cfg.Practice.Distance

	if distance == 0 {
		settings, serr := db.Settings()
		if serr != nil {
			return serr
		}

		distance = settings.LastDistance
	}

	m := practice.New(repo, cfg, sess, distance)

	p := tea.NewProgram(m)

	_, err = p.Run()
	if err != nil {
		return err
	}

	if m.Err() != nil {
		return m.Err()
	}

	if err = repo.End(sess.ID); err != nil {
		return err
	}

	sess, err = repo.Session(sess.ID)
	if err != nil {
		return err
	}

	printSessionSummary(sess)

	notify(cfg, sess)

	return runSessionCmd(cfg.Settings.Cmd)
}

// logAction records a completed set directly from the command-line,
// without the interactive screen.
func logAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	repo, db, err := openRepo()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	sess, err := repo.Open()
	if err != nil {
		return err
	}

	if sess == nil {
		sess, err = repo.Create(cfg.Practice.DiscsPerSet)
		if err != nil {
			return err
		}
	}

	distance := cfg.Practice.Distance

	set := repo.NewSet(sess, distance)

	// Keywords come from the --results flag or from bare arguments, so
	// both `putt log -r "made miss"` and `putt log made miss` work.
	keywords := ctx.String("results")
	if keywords == "" && ctx.Args().Len() > 0 {
		keywords = strings.Join(ctx.Args().Slice(), " ")
	}

	if keywords != "" {
		results, perr := practice.ParseResults(keywords)
		if perr != nil {
			return perr
		}

		set.PuttResults = results
		set.DiscsThrown = len(results)
		set.DiscsScored = 0

		for _, r := range results {
			if r == models.PuttMade {
				set.DiscsScored++
			}
		}
	} else {
		set.DiscsScored = int(ctx.Uint("made"))

		if ctx.IsSet("thrown") {
			set.DiscsThrown = int(ctx.Uint("thrown"))
		}
	}

	if set.DiscsScored > set.DiscsThrown {
		return errInvalidTally.Fmt(set.DiscsScored, set.DiscsThrown)
	}

	if err = repo.AppendSet(sess.ID, set); err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Logged %s of %s putts",
		ui.Green(set.DiscsScored),
		ui.Green(set.DiscsThrown),
	)

	if ctx.Bool("end") {
		if err = repo.End(sess.ID); err != nil {
			return err
		}

		sess, err = repo.Session(sess.ID)
		if err != nil {
			return err
		}

		printSessionSummary(sess)
	}

	return nil
}

// listAction handles the list command and prints a table of all
// completed sessions.
func listAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	repo, db, err := openRepo()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	completed, err := filteredSessions(ctx, repo)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, jerr := json.Marshal(completed)
		if jerr != nil {
			return jerr
		}

		pterm.Println(string(b))

		return nil
	}

	return listSessions(completed, cfg.Display.TwentyFourHour)
}

// statsAction computes statistics over the full practice history.
func statsAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	repo, db, err := openRepo()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	completed, err := filteredSessions(ctx, repo)
	if err != nil {
		return err
	}

	report := stats.NewReport(completed)

	if ctx.Bool("json") {
		b, jerr := report.ToJSON()
		if jerr != nil {
			return jerr
		}

		fmt.Println(string(b))

		return nil
	}

	report.Render(os.Stdout)

	return nil
}

// deleteAction deletes the session at the given list position after
// confirmation.
func deleteAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errMissingPosition
	}

	position, err := strconv.Atoi(ctx.Args().First())
	if err != nil {
		return errMissingPosition
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	repo, db, err := openRepo()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	sess, err := sessionAt(repo, position)
	if err != nil {
		return err
	}

	return delSession(repo, sess, cfg.Display.TwentyFourHour)
}

// editSetAction applies a corrective edit to a previously recorded set.
func editSetAction(ctx *cli.Context) error {
	if ctx.Args().Len() < 2 {
		return errMissingSetNumber
	}

	position, err := strconv.Atoi(ctx.Args().Get(0))
	if err != nil {
		return errMissingPosition
	}

	setNumber, err := strconv.Atoi(ctx.Args().Get(1))
	if err != nil {
		return errMissingSetNumber
	}

	if _, err = loadConfig(ctx); err != nil {
		return err
	}

	repo, db, err := openRepo()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	sess, err := sessionAt(repo, position)
	if err != nil {
		return err
	}

	if setNumber < 1 || setNumber > len(sess.Sets) {
		return errInvalidSetNumber.Fmt(setNumber)
	}

	set := sess.Sets[setNumber-1]

	upd := session.SetUpdate{
		DiscsScored: set.DiscsScored,
		DiscsThrown: set.DiscsThrown,
	}

	if ctx.String("results") != "" {
		results, perr := practice.ParseResults(ctx.String("results"))
		if perr != nil {
			return perr
		}

		upd.PuttResults = results
		upd.DiscsThrown = len(results)
		upd.DiscsScored = 0

		for _, r := range results {
			if r == models.PuttMade {
				upd.DiscsScored++
			}
		}
	}

	if ctx.IsSet("made") {
		upd.DiscsScored = int(ctx.Uint("made"))
	}

	if ctx.IsSet("thrown") {
		upd.DiscsThrown = int(ctx.Uint("thrown"))
	}

	if ctx.IsSet("distance") {
		distance := int(ctx.Uint("distance"))
		upd.Distance = &distance
	}

	if upd.DiscsScored > upd.DiscsThrown {
		return errInvalidTally.Fmt(upd.DiscsScored, upd.DiscsThrown)
	}

	if err = repo.UpdateSet(sess.ID, set.ID, upd); err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Updated set %s: %s of %s putts",
		ui.Green(setNumber),
		ui.Green(upd.DiscsScored),
		ui.Green(upd.DiscsThrown),
	)

	return nil
}

// exportAction writes the full practice history to a backup file.
func exportAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	data, err := backup.Export(db)
	if err != nil {
		return err
	}

	path := ctx.String("output")
	if path == "" {
		path = backup.FileName(time.Now())
	}

	if err = os.WriteFile(path, data, 0o600); err != nil {
		return err
	}

	pterm.Success.Printfln("Backup written to %s", ui.Green(path))

	return nil
}

// importAction replaces the practice history with the contents of a
// backup file after confirmation.
func importAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errMissingBackupFile
	}

	path := ctx.Args().First()

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	if !confirmReplace() {
		pterm.Info.Println("Import cancelled")
		return nil
	}

	n, err := backup.Import(db, data)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Imported %s sessions", ui.Green(n))

	return nil
}

// editConfigAction opens the config file in the user's default editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	config.InitializePaths()

	log.Init(config.LogFilePath())

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if PUTT_NO_COLOR is set
	if _, exists := os.LookupEnv(envPuttNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

// Package app assembles the putt command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/The-Faulkners/putttracker/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the putt app instance.
func Get() *cli.App {
	puttApp := &cli.App{
		Name: "putt",
		Usage: `
		Putt is a putting practice tracker for disc golfers. Log your sets
		from the command-line and track your accuracy over time.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "log",
				Usage:     "Record a completed set without starting the interactive session",
				ArgsUsage: "[result keywords, e.g. 'made made miss']",
				Action:    logAction,
				Flags: []cli.Flag{
					resultsFlag,
					madeFlag,
					thrownFlag,
					distanceFlag,
					discsFlag,
					endFlag,
				},
			},
			{
				Name:   "list",
				Usage:  "Print a table of completed practice sessions",
				Action: listAction,
				Flags: []cli.Flag{
					jsonFlag,
					periodFlag,
					startFlag,
					endTimeFlag,
				},
			},
			{
				Name:   "stats",
				Usage:  "Track your progress with detailed statistics reporting",
				Action: statsAction,
				Flags: []cli.Flag{
					jsonFlag,
					periodFlag,
					startFlag,
					endTimeFlag,
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a practice session and all of its sets",
				ArgsUsage: "<session number from 'putt list'>",
				Action:    deleteAction,
			},
			{
				Name:      "edit-set",
				Usage:     "Correct a previously recorded set",
				ArgsUsage: "<session number> <set number>",
				Action:    editSetAction,
				Flags: []cli.Flag{
					resultsFlag,
					madeFlag,
					thrownFlag,
					distanceFlag,
				},
			},
			{
				Name:   "export",
				Usage:  "Export the full practice history to a JSON backup file",
				Action: exportAction,
				Flags: []cli.Flag{
					outputFlag,
				},
			},
			{
				Name:      "import",
				Usage:     "Replace the practice history with a previously exported backup",
				ArgsUsage: "<backup file>",
				Action:    importAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			discsFlag,
			distanceFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return puttApp
}

package app

import "github.com/urfave/cli/v2"

var (
	discsFlag = &cli.UintFlag{
		Name:    "discs",
		Aliases: []string{"n"},
		Usage:   "Number of discs thrown per set (default: 10)",
	}

	distanceFlag = &cli.UintFlag{
		Name:    "distance",
		Aliases: []string{"ft"},
		Usage:   "Putting distance in feet. Set to 0 to leave distances unrecorded",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after the session ends",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	resultsFlag = &cli.StringFlag{
		Name:    "results",
		Aliases: []string{"r"},
		Usage:   "Record individual putts as keywords (e.g. 'made made miss'). Say 'undo' to take back the last putt",
	}

	madeFlag = &cli.UintFlag{
		Name:  "made",
		Usage: "Number of putts made in the set",
	}

	thrownFlag = &cli.UintFlag{
		Name:  "thrown",
		Usage: "Number of discs thrown in the set. Defaults to the configured set size",
	}

	endFlag = &cli.BoolFlag{
		Name:  "end",
		Usage: "End the session after logging the set",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Only include sessions from the named period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Only include sessions starting on or after this date (e.g. '2024-06-01')",
	}

	endTimeFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Only include sessions starting on or before this date",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the backup to the specified file",
	}
)

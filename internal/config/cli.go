package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionCmd    string
	DiscsPerSet   uint
	Distance      uint
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			DiscsPerSet:   ctx.Uint("discs"),
			Distance:      ctx.Uint("distance"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.DiscsPerSet > 0 {
		c.Practice.DiscsPerSet = int(opts.DiscsPerSet)
	}

	if opts.Distance > 0 {
		c.Practice.Distance = int(opts.Distance)
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}
}

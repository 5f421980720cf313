package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗ ██╗   ██╗████████╗████████╗
██╔══██╗██║   ██║╚══██╔══╝╚══██╔══╝
██████╔╝██║   ██║   ██║      ██║
██╔═══╝ ██║   ██║   ██║      ██║
██║     ╚██████╔╝   ██║      ██║
╚═╝      ╚═════╝    ╚═╝      ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	DiscsPerSet int
	Distance    int
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts on the first run.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure the putt tracker for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'putt edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Discs thrown per set").
				Options(
					huh.NewOption("5 discs", 5),
					huh.NewOption("10 discs", 10).Selected(true),
					huh.NewOption("15 discs", 15),
					huh.NewOption("20 discs", 20),
				).
				Value(&opts.DiscsPerSet),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default putting distance").
				Options(
					huh.NewOption("Don't record distances", 0).Selected(true),
					huh.NewOption("15 feet", 15),
					huh.NewOption("20 feet", 20),
					huh.NewOption("25 feet", 25),
					huh.NewOption("30 feet", 30),
				).
				Value(&opts.Distance),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the
// configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Practice.DiscsPerSet = opts.DiscsPerSet
	c.Practice.Distance = opts.Distance
}

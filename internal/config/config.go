// Package config handles the application's configuration and file paths
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Practice      PracticeConfig     `mapstructure:"practice"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
	}

	// PracticeConfig holds the defaults used when starting a session.
	PracticeConfig struct {
		// DiscsPerSet is the number of discs thrown per set.
		DiscsPerSet int `mapstructure:"discs_per_set"`
		// Distance is the default putting distance in feet. Zero leaves
		// the distance unrecorded.
		Distance int `mapstructure:"distance"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		// Cmd is an arbitrary command executed after each session.
		Cmd string `mapstructure:"cmd"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "putt"
	configFileName = "config.yml"
	dbFileName     = "putt.db"
	logFileName    = "putt.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func InitializePaths() {
	puttEnv := strings.TrimSpace(os.Getenv("PUTT_ENV"))
	if puttEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", puttEnv)
		dbFileName = fmt.Sprintf("putt_%s.db", puttEnv)
		logFileName = fmt.Sprintf("putt_%s.log", puttEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyDiscsPerSet          = "practice.discs_per_set"
	keyDistance             = "practice.distance"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
)

// WithViperConfig returns an Option that loads configuration from Viper,
// writing a default config file first if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values collected from
// the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDiscsPerSet, 10)
	v.SetDefault(keyDistance, 0)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")

	if c.Practice.DiscsPerSet != 0 {
		v.Set(keyDiscsPerSet, c.Practice.DiscsPerSet)
	}

	if c.Practice.Distance != 0 {
		v.Set(keyDistance, c.Practice.Distance)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c)
}

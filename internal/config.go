package internal

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable that overrides the config path
const ConfigEnv = "LOX_CONFIG"

const configFile = ".lox.yaml"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of the command line tool
type Config struct {
	LogLevel     string `yaml:"log_level"`
	Color        string `yaml:"color"`
	HistoryFile  string `yaml:"history_file"`
	Prompt       string `yaml:"prompt"`
	MaxCallDepth int    `yaml:"max_call_depth"`
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() Config {
	return Config{
		LogLevel:     "warn",
		Color:        ColorAuto,
		HistoryFile:  ".lox_history",
		Prompt:       "> ",
		MaxCallDepth: DefaultMaxCallDepth,
	}
}

// ConfigPath returns $LOX_CONFIG if set or ~/.lox.yaml
func ConfigPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configFile
	}
	return filepath.Join(home, configFile)
}

// LoadConfig reads the config at path over the defaults. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}

	if err := config.validate(); err != nil {
		return config, errors.Wrapf(err, "invalid config %s", path)
	}
	return config, nil
}

func (c Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("unknown color mode %q", c.Color)
	}
	if c.MaxCallDepth < 0 {
		return errors.Errorf("max_call_depth must not be negative, got %d", c.MaxCallDepth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the configured log level
func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel, errors.WithStack(err)
	}
	return level, nil
}

// HistoryPath resolves a relative history file against the home directory
func (c Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}

// NewLogger builds the session logger for the configured level
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := c.Level()
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	return log
}

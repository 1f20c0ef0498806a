package console

import (
	"fmt"
	"strings"

	"codeberg.org/tslocum/bgammon-rules"
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config holds console settings. Values are read from the environment and
// may be overridden by command line flags.
type Config struct {
	Player1     string `env:"BGAMMON_PLAYER1" envDefault:"Player1"`
	Player2     string `env:"BGAMMON_PLAYER2" envDefault:"Player2"`
	Seed        int64  `env:"BGAMMON_SEED"`
	LogLevel    string `env:"BGAMMON_LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"BGAMMON_LOG_FORMAT" envDefault:"console"`
	LogFile     string `env:"BGAMMON_LOG_FILE"`
	Language    string `env:"BGAMMON_LANG" envDefault:"en"`
	HistoryFile string `env:"BGAMMON_HISTORY_FILE"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and normalizes its values.
func (c *Config) Validate() error {
	c.Player1 = strings.TrimSpace(c.Player1)
	c.Player2 = strings.TrimSpace(c.Player2)
	switch {
	case c.Player1 == "" || c.Player2 == "":
		return fmt.Errorf("player names must not be empty")
	case strings.ContainsAny(c.Player1+c.Player2, " \t"):
		return fmt.Errorf("player names must not contain whitespace")
	case strings.EqualFold(c.Player1, c.Player2):
		return fmt.Errorf("player names must differ")
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("invalid language %q: %w", c.Language, err)
	}
	return nil
}

// LanguageTag returns the configured language, falling back to English.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// Domain returns the translation domain for the configured language.
func (c *Config) Domain() string {
	base, _ := c.LanguageTag().Base()
	return "bgammon-" + base.String()
}

// Dice returns the dice described by the configuration: seeded when a
// seed is set, random otherwise.
func (c *Config) Dice() bgammon.Dice {
	if c.Seed != 0 {
		return bgammon.NewSeededDice(c.Seed)
	}
	return bgammon.RandomDice{}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/reoring/wirekit"
)

// Config is read from the environment; command-line flags override it.
type Config struct {
	LogLevel   string `env:"WIREKIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"WIREKIT_LOG_FORMAT" envDefault:"console"`
	Format     string `env:"WIREKIT_FORMAT" envDefault:"json"`
	Indent     int    `env:"WIREKIT_INDENT" envDefault:"2"`
	Duplicates string `env:"WIREKIT_DUPLICATES" envDefault:"warn"`
	Lang       string `env:"WIREKIT_LANG" envDefault:"en"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func parseSeverity(s string) (wirekit.Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return wirekit.Ignore, nil
	case "warn", "warning", "":
		return wirekit.Warn, nil
	case "reject", "error":
		return wirekit.Reject, nil
	}
	return wirekit.Warn, fmt.Errorf("unknown duplicate policy %q", s)
}

// registryOptions translates the configuration into builder options.
func (c Config) registryOptions() ([]wirekit.Option, error) {
	sev, err := parseSeverity(c.Duplicates)
	if err != nil {
		return nil, err
	}
	if c.Indent < 0 {
		return nil, fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	return []wirekit.Option{
		wirekit.WithDuplicatePolicy(sev),
		wirekit.WithTextIndent(strings.Repeat(" ", c.Indent)),
	}, nil
}

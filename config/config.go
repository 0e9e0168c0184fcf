// Package config resolves searchbench settings from, in increasing precedence:
// built-in defaults, a .env file, SEARCHBENCH_* environment variables and
// command-line flags (applied by the CLI on top of the returned Config).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/katalvlaran/searchbench/search"
)

// Environment variable names.
const (
	EnvMaxDepth = "SEARCHBENCH_MAX_DEPTH"
	EnvMapFile  = "SEARCHBENCH_MAP"
	EnvColor    = "SEARCHBENCH_COLOR"
	EnvVerbose  = "SEARCHBENCH_VERBOSE"
)

// DefaultEnvFile is the .env file Load reads when no file is named.
const DefaultEnvFile = ".env"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the resolved settings.
type Config struct {
	// MaxDepth bounds iterative deepening (limits 0..MaxDepth-1).
	MaxDepth int

	// MapFile, when set, replaces the built-in Romania map with a YAML map.
	MapFile string

	// Color enables ANSI colors in reports.
	Color bool

	// Verbose enables development logging to stderr.
	Verbose bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{MaxDepth: search.DefaultMaxDepth}
}

// Load reads the given .env files (DefaultEnvFile when none) into the process
// environment without overriding variables already set, then resolves Config.
// Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Config{}, errors.Wrap(err, "config: load env file")
		}
	}

	cfg := Default()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from variables visible through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMaxDepth); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", EnvMaxDepth, v, err)
		}
		c.MaxDepth = n
	}
	if v, ok := lookup(EnvMapFile); ok {
		c.MapFile = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvColor); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", EnvColor, v, err)
		}
		c.Color = b
	}
	if v, ok := lookup(EnvVerbose); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", EnvVerbose, v, err)
		}
		c.Verbose = b
	}

	return nil
}

// Validate reports settings no search can run with.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max depth cannot be negative (%d)", c.MaxDepth)
	}

	return nil
}

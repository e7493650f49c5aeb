// Package config holds the engine's runtime configuration: reporter styling
// and alignment padding, with defaults overridable from the environment or an
// optional dotenv file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the engine.
type Config struct {
	// NoColor disables ANSI colors in the console reporter.
	NoColor bool
	// Quiet suppresses console output entirely; only the exit code remains.
	Quiet bool
	// Progress enables the progress-bar reporter.
	Progress bool
	// Padding is added to unit name lengths for display alignment.
	Padding int
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{Padding: DefaultPadding}
}

// Load creates a Config from defaults, an optional .env file and the
// environment. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load(DefaultEnvFile)
	return FromEnv(New())
}

// FromEnv applies recognized environment variables on top of cfg.
func FromEnv(cfg *Config) *Config {
	if boolEnv(EnvNoColor) {
		cfg.NoColor = true
	}
	if boolEnv(EnvQuiet) {
		cfg.Quiet = true
	}
	if boolEnv(EnvProgress) {
		cfg.Progress = true
	}
	if v := os.Getenv(EnvPadding); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Padding = n
		}
	}
	return cfg
}

// boolEnv reports whether the variable is set to a truthy value. Unset and
// unparsable values count as false.
func boolEnv(name string) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

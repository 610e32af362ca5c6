// Package config loads runtime configuration for the BorrowSafe CLI.
//
// Sources & precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// User preferences (due-soon threshold, auto reminders) are deliberately not
// configuration: they live in the persistent store as Settings.
package config

// Config holds runtime settings for the BorrowSafe CLI.
type Config struct {
	// DatabasePath is the SQLite file holding all persisted state.
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "borrowsafe.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

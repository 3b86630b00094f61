// Package config holds runtime settings for the civicwatch client.
// Sources are applied in order (defaults, environment with .env, JSON
// file, command-line flags) with later sources taking precedence.
package config

import "github.com/civicwatch/civicwatch/internal/cipherx"

// Config holds the knobs of the client core.
//
// ObfuscationKey feeds the cookie codec; it is configurable but still not a
// secret (see cipherx). DSN is the path of the local sqlite database that
// stands in for browser storage.
type Config struct {
	DSN            string
	CookieName     string
	CookieTTLDays  int
	ObfuscationKey string
	ImageMaxWidth  int
	ImageMaxHeight int
	ImageQuality   float64
}

// LoadDefaults populates c with the stock settings.
func (c *Config) LoadDefaults() {
	c.DSN = "civicwatch.db"
	c.CookieName = "civicwatch_user"
	c.CookieTTLDays = 30
	c.ObfuscationKey = cipherx.DefaultKey
	c.ImageMaxWidth = 800
	c.ImageMaxHeight = 600
	c.ImageQuality = 0.8
}

// LoadConfig constructs a Config, applies defaults, then overlays
// environment variables, JSON (if a config file is named), and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"encoding/json"
	"os"

	"github.com/civicwatch/civicwatch/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Zero values
// mean "not set" and leave the runtime Config untouched.
type JSONConfig struct {
	DSN            string  `json:"dsn"`
	CookieName     string  `json:"cookie_name"`
	CookieTTLDays  int     `json:"cookie_ttl_days"`
	ObfuscationKey string  `json:"cookie_key"`
	ImageMaxWidth  int     `json:"image_max_width"`
	ImageMaxHeight int     `json:"image_max_height"`
	ImageQuality   float64 `json:"image_quality"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flags. No flag, no JSON. Read or unmarshal errors panic; the
// process has no sensible way to continue with a half-read config.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DSN != "" {
		cfg.DSN = jc.DSN
	}
	if jc.CookieName != "" {
		cfg.CookieName = jc.CookieName
	}
	if jc.CookieTTLDays > 0 {
		cfg.CookieTTLDays = jc.CookieTTLDays
	}
	if jc.ObfuscationKey != "" {
		cfg.ObfuscationKey = jc.ObfuscationKey
	}
	if jc.ImageMaxWidth > 0 {
		cfg.ImageMaxWidth = jc.ImageMaxWidth
	}
	if jc.ImageMaxHeight > 0 {
		cfg.ImageMaxHeight = jc.ImageMaxHeight
	}
	if jc.ImageQuality > 0 && jc.ImageQuality <= 1 {
		cfg.ImageQuality = jc.ImageQuality
	}
}

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a .env file
// from the working directory first when one exists. Unset or unparsable
// variables leave the current value untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CIVICWATCH_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("CIVICWATCH_COOKIE_NAME"); v != "" {
		cfg.CookieName = v
	}
	if v := os.Getenv("CIVICWATCH_COOKIE_TTL_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.CookieTTLDays = days
		}
	}
	if v := os.Getenv("CIVICWATCH_COOKIE_KEY"); v != "" {
		cfg.ObfuscationKey = v
	}
	if v := os.Getenv("CIVICWATCH_IMAGE_MAX_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ImageMaxWidth = n
		}
	}
	if v := os.Getenv("CIVICWATCH_IMAGE_MAX_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ImageMaxHeight = n
		}
	}
	if v := os.Getenv("CIVICWATCH_IMAGE_QUALITY"); v != "" {
		if q, err := strconv.ParseFloat(v, 64); err == nil && q > 0 && q <= 1 {
			cfg.ImageQuality = q
		}
	}
}

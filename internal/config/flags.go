package config

import (
	"flag"
	"os"

	"github.com/civicwatch/civicwatch/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file
//	-k string   cookie obfuscation key
//	-t int      session cookie TTL in days
//
// Arguments are filtered to these flags only so the config flag set does
// not collide with flags owned elsewhere (the -c/-config pair, test
// flags).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DSN, "d", cfg.DSN, "path of the local database file")
	fs.StringVar(&cfg.ObfuscationKey, "k", cfg.ObfuscationKey, "cookie obfuscation key")
	ttlDays := fs.Int("t", cfg.CookieTTLDays, "session cookie TTL (in days)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *ttlDays > 0 {
		cfg.CookieTTLDays = *ttlDays
	}
}

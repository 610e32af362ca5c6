package config

import (
	"flag"
	"os"

	"github.com/borrowsafe/borrowsafe/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the SQLite database file (default from Config)
//
// The function filters os.Args to only include the flags it knows about, so
// it does not interfere with flags owned by other loaders.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

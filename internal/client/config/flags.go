package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/fruitie/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Flags it does not know about are filtered out by flagx first.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the API server")
	fs.StringVar(&cfg.Page, "p", cfg.Page, "page context (buyer, seller, home)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.MaxHistory, "n", cfg.MaxHistory, "chat history size")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file")

	if err := flagx.ParseKnown(fs, os.Args[1:]); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

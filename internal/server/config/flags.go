package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/fruitie/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   database DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-k string   Gemini API key
//	-m string   Gemini model
//	-l string   log file
//
// Flags owned by other components are filtered out first.
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity duration (in minutes)")
	fs.StringVar(&config.GenAIAPIKey, "k", config.GenAIAPIKey, "Gemini API key")
	fs.StringVar(&config.GenAIModel, "m", config.GenAIModel, "Gemini model")
	fs.StringVar(&config.LogFile, "l", config.LogFile, "log file")

	if err := flagx.ParseKnown(fs, os.Args[1:]); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}

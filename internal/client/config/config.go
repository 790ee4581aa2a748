package config

import "time"

// Config holds runtime settings for the Fruitie terminal client.
//
// Fields:
//   - ServerURL: base URL of the Fruitie API.
//   - Page: page context sent with chat messages (buyer, seller or home).
//   - RequestTimeout: upper bound for one API round trip.
//   - MaxHistory: how many chat messages the session keeps.
//   - LogFile: where client diagnostics go; empty discards them.
type Config struct {
	ServerURL      string
	Page           string
	RequestTimeout time.Duration
	MaxHistory     int
	LogFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.Page = "home"
	c.RequestTimeout = 30 * time.Second
	c.MaxHistory = 50
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

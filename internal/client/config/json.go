package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fruitie/internal/flagx"
	"github.com/dmitrijs2005/fruitie/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	Page           string         `json:"page"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	MaxHistory     int            `json:"max_history"`
	LogFile        string         `json:"log_file"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Missing keys keep their current value. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.Page != "" {
		cfg.Page = jc.Page
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MaxHistory != 0 {
		cfg.MaxHistory = jc.MaxHistory
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fruitie/internal/flagx"
	"github.com/dmitrijs2005/fruitie/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations
// accept "24h"-style strings or integer nanoseconds. Omitted fields keep
// their current value.
type JsonConfig struct {
	HTTPAddr              string         `json:"http_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	GenAIAPIKey           string         `json:"genai_api_key"`
	GenAIModel            string         `json:"genai_model"`
	ReplyTimeout          timex.Duration `json:"reply_timeout"`
	LogFile               string         `json:"log_file"`
	AllowedOrigins        []string       `json:"allowed_origins"`
}

// parseJson overlays values from the file named by -c/-config. Without the
// flag nothing happens. An unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.GenAIAPIKey, c.GenAIAPIKey)
	setString(&config.GenAIModel, c.GenAIModel)
	setString(&config.LogFile, c.LogFile)

	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ReplyTimeout.Duration > 0 {
		config.ReplyTimeout = c.ReplyTimeout.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

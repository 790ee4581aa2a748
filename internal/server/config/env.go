package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names read by parseEnv.
const (
	EnvPort        = "PORT"
	EnvDatabaseDSN = "DATABASE_DSN"
	EnvSecretKey   = "JWT_SECRET"
	EnvTokenTTL    = "TOKEN_TTL"
	EnvGenAIAPIKey = "GEMINI_API_KEY"
	EnvGenAIModel  = "GEMINI_MODEL"
	EnvLogFile     = "LOG_FILE"
	EnvCORSOrigins = "CORS_ORIGINS"
	defaultEnvFile = ".env"
)

// parseEnv loads .env when present (real environment variables win) and
// overlays whatever is set. A malformed TOKEN_TTL is ignored.
func parseEnv(config *Config) {
	_ = godotenv.Load(defaultEnvFile)

	if v, ok := os.LookupEnv(EnvPort); ok && v != "" {
		if strings.Contains(v, ":") {
			config.HTTPAddr = v
		} else {
			config.HTTPAddr = ":" + v
		}
	}

	setString(&config.DatabaseDSN, os.Getenv(EnvDatabaseDSN))
	setString(&config.SecretKey, os.Getenv(EnvSecretKey))
	setString(&config.GenAIAPIKey, os.Getenv(EnvGenAIAPIKey))
	setString(&config.GenAIModel, os.Getenv(EnvGenAIModel))
	setString(&config.LogFile, os.Getenv(EnvLogFile))

	if v := os.Getenv(EnvTokenTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			config.TokenValidityDuration = d
		}
	}

	if v := os.Getenv(EnvCORSOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			config.AllowedOrigins = origins
		}
	}
}

package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally loading a .env
// file first. A missing .env file is not an error; the process environment
// always wins.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	if len(envFilePath) == 0 {
		envFilePath = []string{".env"}
	}
	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("no env file loaded", "path", path)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		break
	}

	var cfg App
	if err := envconfig.Process("LEDGER", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

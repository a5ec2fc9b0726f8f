package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads an optional .env file and then the process environment.
// Every setting has a default, so a missing .env file is not an error.
func Load(logger *slog.Logger, envFilePath ...string) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv(logger)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// First file found wins
	for _, path := range envFilePath {
		foundPath, err := findEnvFile(wd, path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		if err := godotenv.Load(foundPath); err != nil {
			logger.Warn("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}

		logger.Debug("Environment loaded from file", "path", foundPath)
		return loadFromEnv(logger)
	}

	logger.Debug("No environment files found, using process environment")
	return loadFromEnv(logger)
}

func loadFromEnv(logger *slog.Logger) (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Debug("App config loaded",
		"env", cfg.Env,
		"log_level", cfg.Log.Level,
		"exchange_api_url", cfg.ExchangeRate.ApiUrl,
		"exchange_api_key", maskValue(cfg.ExchangeRate.ApiKey),
		"exchange_http_timeout", cfg.ExchangeRate.HTTPTimeout,
		"list_base", cfg.Converter.ListBase,
	)
	return &cfg, nil
}

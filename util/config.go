package util

import (
	"fmt"
	"os"

	"dailysteps/core"
)

const (
	// DefaultTokenCache is where the oauth token is persisted between runs.
	DefaultTokenCache = "tmp_client_token.json"

	envClientSecret = "GOOGLE_CLIENT_SECRET"
	envTokenCache   = "TOKEN_CACHE"
	envLogLevel     = "LOG_LEVEL"
)

type Config struct {
	ClientSecretPath string
	TokenCachePath   string
	LogLevel         string
}

// LoadConfig reads the program configuration from the environment.
// GOOGLE_CLIENT_SECRET is required and must name an existing file; both
// conditions are checked here, before anything touches the network.
func LoadConfig() (*Config, error) {
	secretPath := os.Getenv(envClientSecret)
	if secretPath == "" {
		return nil, fmt.Errorf("%w: missing env variable: %s", core.ErrConfig, envClientSecret)
	}
	if _, err := os.Stat(secretPath); err != nil {
		return nil, fmt.Errorf("%w: invalid client secret path: %s", core.ErrConfig, secretPath)
	}

	cfg := &Config{
		ClientSecretPath: secretPath,
		TokenCachePath:   os.Getenv(envTokenCache),
		LogLevel:         os.Getenv(envLogLevel),
	}
	if cfg.TokenCachePath == "" {
		cfg.TokenCachePath = DefaultTokenCache
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

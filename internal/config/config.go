package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/FranLegon/drive-transfer/internal/logger"
)

// Config holds the environment-tunable settings. Everything else the tool
// relies on (account credentials, remote definitions) lives in rclone's own
// configuration store, which this process never touches directly.
type Config struct {
	// RclonePath is the rclone executable to invoke. The default expects the
	// binary to sit next to the program, matching the documented setup.
	RclonePath string `env:"RCLONE_PATH" envDefault:"./rclone"`

	// ProviderType is the rclone backend type used when creating new remotes.
	ProviderType string `env:"RCLONE_PROVIDER" envDefault:"onedrive"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warning("could not read .env file: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

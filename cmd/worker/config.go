package main

import (
	"fmt"
	"os"
	"time"

	"citydirectory/adapters/directory"
	"citydirectory/domain"
)

type Config struct {
	DirectoryAddr string
	APIKey        string
	Kind          domain.ServiceKind
	ServiceAddr   string
	RenewInterval time.Duration
}

// LoadConfig loads configuration from environment variables.
// SERVICE_KIND, SERVICE_ADDR and API_KEY are required.
func LoadConfig() (*Config, error) {
	config := &Config{
		DirectoryAddr: "localhost:50050",
		RenewInterval: directory.DefaultRenewInterval,
	}

	if v := os.Getenv("DIRECTORY_ADDR"); v != "" {
		config.DirectoryAddr = v
	}

	kindStr := os.Getenv("SERVICE_KIND")
	if kindStr == "" {
		return nil, fmt.Errorf("SERVICE_KIND is required")
	}
	kind, err := domain.ParseServiceKind(kindStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_KIND: %w", err)
	}
	config.Kind = kind

	config.ServiceAddr = os.Getenv("SERVICE_ADDR")
	if config.ServiceAddr == "" {
		return nil, fmt.Errorf("SERVICE_ADDR is required")
	}

	config.APIKey = os.Getenv("API_KEY")
	if config.APIKey == "" {
		return nil, fmt.Errorf("API_KEY is required")
	}

	if v := os.Getenv("RENEW_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RENEW_INTERVAL: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("RENEW_INTERVAL must be positive")
		}
		config.RenewInterval = d
	}

	return config, nil
}

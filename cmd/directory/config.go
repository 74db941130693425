package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"citydirectory/service"
)

type Config struct {
	GRPCPort     int
	HTTPPort     int // 0 disables the HTTP surface
	APIKeys      []string
	RedisAddr    string // empty means static key store
	ReapInterval time.Duration
}

// LoadConfig loads configuration from environment variables. Either
// API_KEYS or REDIS_ADDR must be set; everything else has defaults.
func LoadConfig() (*Config, error) {
	config := &Config{
		GRPCPort:     50050,
		ReapInterval: service.DefaultReapInterval,
	}

	if v := os.Getenv("SERVICE_PORT_GRPC"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_PORT_GRPC: %w", err)
		}
		config.GRPCPort = port
	}

	if v := os.Getenv("SERVICE_PORT_HTTP"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
		}
		config.HTTPPort = port
	}

	if v := os.Getenv("API_KEYS"); v != "" {
		for _, key := range strings.Split(v, ",") {
			if key = strings.TrimSpace(key); key != "" {
				config.APIKeys = append(config.APIKeys, key)
			}
		}
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.RedisAddr = v
	}

	if v := os.Getenv("REAP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REAP_INTERVAL: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("REAP_INTERVAL must be positive")
		}
		config.ReapInterval = d
	}

	if len(config.APIKeys) == 0 && config.RedisAddr == "" {
		return nil, fmt.Errorf("API_KEYS or REDIS_ADDR is required")
	}

	return config, nil
}

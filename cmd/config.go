package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// defaultTTLSeconds is the liveness window when TTL_SECONDS is unset.
// Heartbeat senders are expected to beat at least twice per window.
const defaultTTLSeconds = 30

type MyRegistryConfig struct {
	HTTPPort      int
	TTL           time.Duration
	SweepInterval time.Duration
	RedisAddr     string // empty disables event publishing
	LogLevel      string
}

// LoadConfig loads configuration from environment variables.
// SERVICE_PORT_HTTP is required. TTL_SECONDS defaults to 30 and
// SWEEP_INTERVAL_SECONDS to half the TTL. REDIS_ADDR is optional.
func LoadConfig() (*MyRegistryConfig, error) {
	httpPortStr := os.Getenv("SERVICE_PORT_HTTP")
	if httpPortStr == "" {
		return nil, fmt.Errorf("SERVICE_PORT_HTTP is required")
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
	}

	ttlSeconds := defaultTTLSeconds
	if v := os.Getenv("TTL_SECONDS"); v != "" {
		ttlSeconds, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TTL_SECONDS: %w", err)
		}
		if ttlSeconds <= 0 {
			return nil, fmt.Errorf("TTL_SECONDS must be positive")
		}
	}
	ttl := time.Duration(ttlSeconds) * time.Second

	sweepInterval := ttl / 2
	if v := os.Getenv("SWEEP_INTERVAL_SECONDS"); v != "" {
		sweepSeconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SWEEP_INTERVAL_SECONDS: %w", err)
		}
		if sweepSeconds <= 0 {
			return nil, fmt.Errorf("SWEEP_INTERVAL_SECONDS must be positive")
		}
		sweepInterval = time.Duration(sweepSeconds) * time.Second
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &MyRegistryConfig{
		HTTPPort:      httpPort,
		TTL:           ttl,
		SweepInterval: sweepInterval,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		LogLevel:      logLevel,
	}, nil
}

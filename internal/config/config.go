// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultAPIURL             = "http://localhost:3000"
	DefaultPort               = "8080"
	DefaultLogLevel           = "info"
	DefaultEnv                = "development"
	DefaultNotificationBuffer = 100
)

// Config holds the settings of the dashboard server and the CLI.
type Config struct {
	// APIURL is the backend base URL.
	APIURL string
	// APITimeout bounds every backend request; 0 disables the bound.
	APITimeout time.Duration

	LogLevel string
	Env      string

	// Port is the dashboard HTTP port.
	Port string
	// NotificationBuffer is how many notifications the feed retains.
	NotificationBuffer int
	// RefreshInterval reloads the store periodically; 0 disables it.
	RefreshInterval time.Duration
}

// Development reports whether the process runs in development mode.
func (c Config) Development() bool {
	return c.Env == DefaultEnv
}

// Load reads files (".env" when none given) into the environment, then builds
// a Config. Missing files are ignored; variables already set take precedence.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	timeout, err := getEnvTimeout("API_TIMEOUT")
	if err != nil {
		return Config{}, err
	}
	buffer, err := getEnvInt("NOTIFICATION_BUFFER", DefaultNotificationBuffer)
	if err != nil {
		return Config{}, err
	}
	refresh, err := getEnvDuration("REFRESH_INTERVAL")
	if err != nil {
		return Config{}, err
	}

	return Config{
		APIURL:             getEnv("API_URL", DefaultAPIURL),
		APITimeout:         timeout,
		LogLevel:           getEnv("LOG_LEVEL", DefaultLogLevel),
		Env:                getEnv("APP_ENV", DefaultEnv),
		Port:               getEnv("DASHBOARD_PORT", DefaultPort),
		NotificationBuffer: buffer,
		RefreshInterval:    refresh,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: expected a non-negative integer, got %q", key, value)
	}
	return n, nil
}

// getEnvTimeout accepts a duration ("5s") or a bare number of milliseconds.
func getEnvTimeout(key string) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, nil
	}
	if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s: expected a duration or milliseconds, got %q", key, value)
	}
	return d, nil
}

func getEnvDuration(key string) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s: expected a duration, got %q", key, value)
	}
	return d, nil
}

// Package config reads ctlcheck settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Load reads the .env file named by CTL_ENV (or .env by default) into the
// process environment. Variables already set are left alone and a missing
// file is not an error. Malformed CTL_LOG_LEVEL or CTL_CACHE values are
// reported as errors.
func Load() error {
	envFile := os.Getenv("CTL_ENV")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	if v := os.Getenv("CTL_LOG_LEVEL"); v != "" {
		if _, err := zapcore.ParseLevel(v); err != nil {
			return fmt.Errorf("invalid CTL_LOG_LEVEL: %w", err)
		}
	}
	if v := os.Getenv("CTL_CACHE"); v != "" {
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("invalid CTL_CACHE: %w", err)
		}
	}
	return nil
}

// LogLevel returns the level parsed from CTL_LOG_LEVEL, defaulting to warn.
func LogLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(os.Getenv("CTL_LOG_LEVEL"))
	if err != nil || os.Getenv("CTL_LOG_LEVEL") == "" {
		return zapcore.WarnLevel
	}
	return lvl
}

// Cache reports whether CTL_CACHE enables the marking cache.
func Cache() bool {
	b, err := strconv.ParseBool(os.Getenv("CTL_CACHE"))
	if err != nil {
		return false
	}
	return b
}

// DefaultModel returns CTL_DEFAULT_MODEL, defaulting to triangle.
func DefaultModel() string {
	m := os.Getenv("CTL_DEFAULT_MODEL")
	if m == "" {
		return "triangle"
	}
	return m
}

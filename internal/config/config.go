package config

import (
	"os"
	"strconv"
)

type Config struct {
	Precision int
	LogLevel  string
}

func Load() *Config {
	return &Config{
		Precision: envIntOr("DCT_PRECISION", 6),
		LogLevel:  envOr("LOG_LEVEL", "info"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Package config provides runtime configuration for the store.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the knobs the store reads at startup.
type Config struct {
	StaffUsername string
	StaffPassword string
	LogFile       string
	NoColor       bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load collects configuration from the environment, reading a .env file
// first if one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		StaffUsername: getenv("STAFF_USERNAME", "staff"),
		StaffPassword: getenv("STAFF_PASSWORD", "staff123"),
		LogFile:       getenv("LOG_FILE", "logs/store.log"),
		NoColor:       os.Getenv("NO_COLOR") != "",
	}
}

// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings. Command-line flags may override them.
type Config struct {
	LogDir       string `env:"HANGMAN_LOG_DIR" envDefault:"game_log"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn"`
	DailySalt    string `env:"HANGMAN_DAILY_SALT" envDefault:"hangman-daily"`
	Addr         string `env:"HANGMAN_ADDR" envDefault:":5175"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	NoColor      string `env:"NO_COLOR"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads Config from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Color reports whether terminal styling is enabled. Any NO_COLOR value
// disables it.
func (c Config) Color() bool { return c.NoColor == "" }

// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the binaries read from the environment
type Config struct {
	Redis   Redis
	Discord Discord
	HTTP    HTTP
	OpenAI  OpenAI

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DiceSeed seeds the die for reproducible runs, zero means seed from the clock
	DiceSeed int64 `env:"DICE_SEED" envDefault:"0"`

	// HistorySize caps the roll history kept per channel
	HistorySize int `env:"HISTORY_SIZE" envDefault:"100"`
}

// Redis connection settings. An empty Addr disables roll history.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Discord bot settings
type Discord struct {
	Token string `env:"DISCORD_TOKEN"`

	// Application ID for the bot
	ApplicationID string `env:"APPLICATION_ID"`

	// Optional guild ID for development (server-specific commands)
	GuildID string `env:"GUILD_ID"`
}

// HTTP server settings
type HTTP struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

// OpenAI settings for the agent. BaseURL allows any OpenAI-compatible endpoint.
type OpenAI struct {
	APIKey   string `env:"OPENAI_API_KEY"`
	BaseURL  string `env:"OPENAI_BASE_URL"`
	Model    string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	MaxSteps int    `env:"AGENT_MAX_STEPS" envDefault:"5"`
}

// Load reads the given dotenv files (a missing file is not an error) and then parses the
// environment. Values already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Assistant AssistantConfig
	Seed      SeedConfig
}

// AssistantConfig points at the external task-generation collaborator.
type AssistantConfig struct {
	BaseURL string        `env:"ASSISTANT_URL,     default=http://localhost:9090"`
	APIKey  string        `env:"ASSISTANT_API_KEY"`
	Timeout time.Duration `env:"ASSISTANT_TIMEOUT, default=30s"`
}

// SeedConfig controls the bootstrap admin account. State is process-lifetime
// only, so without a seeded admin nobody could log in after a restart.
type SeedConfig struct {
	AdminName     string `env:"SEED_ADMIN_NAME,     default=admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

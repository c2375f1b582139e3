// Package config loads server configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Logging LoggingConfig
}

// ServerConfig configures the HTTP/websocket listener.
type ServerConfig struct {
	Address         string
	ShutdownTimeout time.Duration
}

// GameConfig tunes engine pacing and determinism.
type GameConfig struct {
	// RollDelay is the cosmetic dice latency window.
	RollDelay time.Duration
	// StepDelay paces per-space token movement updates.
	StepDelay time.Duration
	// Seed fixes deck shuffling and dice; zero means time-based.
	Seed int64
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string
	Encoding string
}

// Load reads the configuration file at path, applying defaults and
// MONOPOLY_-prefixed environment overrides. A missing file is not an error;
// defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("game.roll_delay", "500ms")
	v.SetDefault("game.step_delay", "200ms")
	v.SetDefault("game.seed", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "json")

	v.SetEnvPrefix("MONOPOLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	return &Config{
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Game: GameConfig{
			RollDelay: v.GetDuration("game.roll_delay"),
			StepDelay: v.GetDuration("game.step_delay"),
			Seed:      v.GetInt64("game.seed"),
		},
		Logging: LoggingConfig{
			Level:    v.GetString("logging.level"),
			Encoding: v.GetString("logging.encoding"),
		},
	}, nil
}

// Package config loads application configuration from an optional config
// file, a .env file and LUMUS_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/vedantvaibhav/Lumus/internal/llm"
	"github.com/vedantvaibhav/Lumus/internal/store"
)

// Config holds application-level configuration. Model credentials are
// resolved separately by the llm package so they never pass through a
// config file.
type Config struct {
	Env         string `mapstructure:"env"`         // local, dev, prod
	ServerAddr  string `mapstructure:"server_addr"` // listen address for the serve command
	DBPath      string `mapstructure:"db_path"`     // sqlite history database, empty disables persistence
	SaveHistory bool   `mapstructure:"save_history"`
}

// Load reads configuration. Precedence, lowest to highest: defaults,
// ./config/config.yaml, .env file, environment.
func Load() (*Config, error) {
	// A missing .env is the normal case outside development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("env", "local")
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("save_history", true)

	v.SetEnvPrefix("LUMUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so bind each one.
	for _, key := range []string{"env", "server_addr", "db_path", "save_history"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DBPath == "" && cfg.SaveHistory {
		path, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve history db path: %w", err)
		}
		cfg.DBPath = path
	}
	return &cfg, nil
}

// LLM resolves the model-backend configuration from the environment. An
// explicit LUMUS_LLM_PROVIDER wins; otherwise the well-known key variables
// are probed in priority order.
func (c *Config) LLM() (llm.Config, error) {
	if os.Getenv("LUMUS_LLM_PROVIDER") != "" {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return llm.Config{}, err
		}
		return cfg, nil
	}

	cfg, ok := llm.DiscoverConfig()
	if !ok {
		return llm.Config{}, errors.New(
			"no model credentials found: set LUMUS_LLM_PROVIDER or one of GOOGLE_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY")
	}
	return cfg, nil
}

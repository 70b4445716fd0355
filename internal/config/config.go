// ABOUTME: Client configuration aggregated from env, .env, and config files
// ABOUTME: Flag overrides are applied by the command layer on top of this

package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/codementor/cli/internal/credstore"
)

// Config holds client-level configuration
type Config struct {
	API struct {
		URL string
	}
	ConfigDir string
}

// Load reads configuration from environment variables and an optional
// config file in the codementor config directory or the working directory.
// Precedence: env > config file > default.
func Load() (Config, error) {
	// Optional; missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CODEMENTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configDir := credstore.DefaultConfigDir()
	v.SetDefault("api.url", "http://localhost:8000/api")
	v.SetDefault("configdir", configDir)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

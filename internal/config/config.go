package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	MongoURI   string `mapstructure:"mongo_uri"`
	Database   string `mapstructure:"database"`
	ListenAddr string `mapstructure:"listen_addr"`
	LogLevel   string `mapstructure:"log_level"`
}

// Load reads configuration from viper. Environment variables (bound in
// cmd/root.go) and any config file take effect here; flags override the
// result afterwards.
func Load() (*Config, error) {
	viper.SetDefault("mongo_uri", "mongodb://localhost:27017")
	viper.SetDefault("database", "retail")
	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("log_level", "info")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

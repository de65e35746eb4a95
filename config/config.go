package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Input InputConfig `mapstructure:"input"`
	Log   LogConfig   `mapstructure:"log"`
}

// InputConfig describes the document handed to the validator binary.
type InputConfig struct {
	Path string `mapstructure:"path"` // path to the JSON document to validate
	Kind string `mapstructure:"kind"` // schema kind: candle | candles | symbol-candles | trade | trades | symbol-trades
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

// Load loads application configuration using Viper.
// It reads from config.yaml and overrides with environment variables.
func Load() *Config {
	v := viper.New()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Support environment variables with dot notation (e.g., INPUT_KIND)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("input.kind", "candles")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.environment", "dev")

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return &cfg
}

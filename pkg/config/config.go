package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding the configuration,
// e.g. LEXTRIE_SERVER_PORT.
const EnvPrefix = "LEXTRIE"

// Config holds all configuration for lextrie
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// InputConfig describes how dictionary files are read
type InputConfig struct {
	KeyColumn   string `mapstructure:"key_column"`
	ValueColumn string `mapstructure:"value_column"`
	// Format forces csv, tsv or json; empty means detect it from the file extension
	Format string `mapstructure:"format"`
}

// ServerConfig holds the HTTP API address
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Addr returns host:port
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load loads configuration from the optional file and the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file and no environment is set.
func Default() *Config {
	return &Config{
		Input:  InputConfig{KeyColumn: "word", ValueColumn: "translation"},
		Server: ServerConfig{Host: "localhost", Port: 8080},
		Log:    LogConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("input.key_column", def.Input.KeyColumn)
	v.SetDefault("input.value_column", def.Input.ValueColumn)
	v.SetDefault("input.format", def.Input.Format)
	v.SetDefault("server.host", def.Server.Host)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.development", def.Log.Development)
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Input.KeyColumn == "" {
		return fmt.Errorf("%w: input key column cannot be empty", ErrInvalidConfig)
	}
	if c.Input.ValueColumn == "" {
		return fmt.Errorf("%w: input value column cannot be empty", ErrInvalidConfig)
	}
	switch c.Input.Format {
	case "", "csv", "tsv", "json":
	default:
		return fmt.Errorf("%w: unknown input format %q", ErrInvalidConfig, c.Input.Format)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: invalid server port: %d", ErrInvalidConfig, c.Server.Port)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"users_api/internal/logger"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "USERS_API"
	configName = "config"
)

// Config is the full runtime configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig is the cross-origin policy applied to every response.
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	MaxAge           int      `mapstructure:"max_age"` // seconds
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// Default returns the built-in configuration: loopback on 8000, one frontend origin.
func Default() Config {
	return Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: "8000"},
		Log:    LogConfig{Level: logger.InfoLevel, Format: logger.ConsoleFormat},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         3600,
		},
	}
}

// Load resolves defaults, then config.yml from the first matching dir, then
// USERS_API_* environment variables. A missing config file is not an error.
func Load(dirs ...string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigName(configName)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(dirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("cors.allowed_origins", d.CORS.AllowedOrigins)
	v.SetDefault("cors.allowed_methods", d.CORS.AllowedMethods)
	v.SetDefault("cors.allowed_headers", d.CORS.AllowedHeaders)
	v.SetDefault("cors.max_age", d.CORS.MaxAge)
	v.SetDefault("cors.allow_credentials", d.CORS.AllowCredentials)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("invalid config: server.port is empty")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: log.level: %w", err)
	}
	if _, err := logger.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("invalid config: log.format: %w", err)
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("invalid config: cors.max_age must be >= 0, got %d", c.CORS.MaxAge)
	}
	return nil
}

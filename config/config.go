package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Middleware
	CORS      CORSConfig
	RateLimit RateLimitConfig

	// Observability
	Metrics MetricsConfig
	Tracing TracingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first if present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = v.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = v.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Middleware
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Observability
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = v.GetString("metrics.namespace")
	cfg.Tracing.Enabled = v.GetBool("tracing.enabled")
	cfg.Tracing.ServiceName = v.GetString("tracing.service_name")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.read_timeout", "10s")
	v.SetDefault("http_server.write_timeout", "10s")
	v.SetDefault("http_server.shutdown_timeout", "15s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 600)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "item_api")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "item-api")
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port)
	}

	switch c.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http_server.mode must be debug, release or test, got %q", c.HTTPServer.Mode)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}

	return nil
}

// splitList splits a comma separated value, since viper does not parse
// arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Engine EngineConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EngineConfig holds validation engine settings. MaxRows caps dataset size
// before the engine runs; SchemaFile optionally extends the built-in
// schema registry with operator-defined YAML schemas.
type EngineConfig struct {
	MaxRows    int    `mapstructure:"max_rows"`
	SchemaFile string `mapstructure:"schema_file"`
	MaxRuns    int    `mapstructure:"max_runs"`
}

// Load reads configuration from environment variables with the DATASIEVE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DATASIEVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Engine defaults
	v.SetDefault("engine.max_rows", 100000)
	v.SetDefault("engine.schema_file", "")
	v.SetDefault("engine.max_runs", 500)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "DATASIEVE_SERVER_PORT",
		"server.read_timeout":  "DATASIEVE_SERVER_READ_TIMEOUT",
		"server.write_timeout": "DATASIEVE_SERVER_WRITE_TIMEOUT",
		"server.environment":   "DATASIEVE_SERVER_ENVIRONMENT",
		"log.level":            "DATASIEVE_LOG_LEVEL",
		"log.format":           "DATASIEVE_LOG_FORMAT",
		"cors.allowed_origins": "DATASIEVE_CORS_ALLOWED_ORIGINS",
		"engine.max_rows":      "DATASIEVE_ENGINE_MAX_ROWS",
		"engine.schema_file":   "DATASIEVE_ENGINE_SCHEMA_FILE",
		"engine.max_runs":      "DATASIEVE_ENGINE_MAX_RUNS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DATASIEVE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DATASIEVE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Engine = EngineConfig{
		MaxRows:    v.GetInt("engine.max_rows"),
		SchemaFile: v.GetString("engine.schema_file"),
		MaxRuns:    v.GetInt("engine.max_runs"),
	}

	return cfg, nil
}

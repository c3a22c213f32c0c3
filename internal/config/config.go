package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Steam    SteamConfig
	Schema   SchemaConfig
	Database DatabaseConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type SteamConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Retries int
}

type SchemaConfig struct {
	FilePath       string
	SaveToFile     bool
	FileOnly       bool
	UpdateInterval time.Duration
	// MaxAge is how old a stored schema may be before startup refetches
	// it from Steam instead of trusting the file.
	MaxAge time.Duration
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("STEAM_API_KEY", "")
	v.SetDefault("STEAM_BASE_URL", "https://api.steampowered.com")
	v.SetDefault("STEAM_TIMEOUT", "30s")
	v.SetDefault("STEAM_RETRIES", 5)
	v.SetDefault("SCHEMA_FILE_PATH", "schema.json")
	v.SetDefault("SCHEMA_SAVE_TO_FILE", true)
	v.SetDefault("SCHEMA_FILE_ONLY", false)
	v.SetDefault("SCHEMA_UPDATE_INTERVAL", "24h")
	v.SetDefault("SCHEMA_MAX_AGE", "24h")
	v.SetDefault("DATABASE_ENABLED", false)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "tf2schema")
	v.SetDefault("DATABASE_SSL_MODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Steam: SteamConfig{
			APIKey:  v.GetString("STEAM_API_KEY"),
			BaseURL: v.GetString("STEAM_BASE_URL"),
			Timeout: duration(v, "STEAM_TIMEOUT", 30*time.Second),
			Retries: v.GetInt("STEAM_RETRIES"),
		},
		Schema: SchemaConfig{
			FilePath:       v.GetString("SCHEMA_FILE_PATH"),
			SaveToFile:     v.GetBool("SCHEMA_SAVE_TO_FILE"),
			FileOnly:       v.GetBool("SCHEMA_FILE_ONLY"),
			UpdateInterval: duration(v, "SCHEMA_UPDATE_INTERVAL", 24*time.Hour),
			MaxAge:         duration(v, "SCHEMA_MAX_AGE", 24*time.Hour),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DATABASE_ENABLED"),
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSL_MODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: duration(v, "DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}

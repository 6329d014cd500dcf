// Package config loads runtime settings from the environment and optional
// theater layout files supplied by the user.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config is the runtime configuration of the widget. Everything has a
// default; a .env file or plain environment variables override it.
type Config struct {
	Debug              bool
	LogPath            string
	MaxSelectableSeats int
	NotificationMillis int
	Persistence        PersistenceConfig
}

// PersistenceConfig selects and parameterizes the seat-cache backend.
type PersistenceConfig struct {
	Backend   string // "file" or "redis"
	CacheDir  string // optional override for the file backend
	RedisAddr string
	RedisDB   int
}

// NotificationDuration returns the configured notification lifetime.
func (c *Config) NotificationDuration() time.Duration {
	return time.Duration(c.NotificationMillis) * time.Millisecond
}

// Load reads configuration from an optional .env file plus the environment.
// A missing .env is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("MAX_SELECTABLE_SEATS", 10)
	v.SetDefault("NOTIFICATION_MS", 3000)
	v.SetDefault("PERSISTENCE_BACKEND", "file")
	v.SetDefault("CACHE_DIR", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	// .env is optional: only a malformed file is fatal.
	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, err
		}
	}
	v.AutomaticEnv()

	return &Config{
		Debug:              v.GetBool("DEBUG"),
		LogPath:            v.GetString("LOG_PATH"),
		MaxSelectableSeats: v.GetInt("MAX_SELECTABLE_SEATS"),
		NotificationMillis: v.GetInt("NOTIFICATION_MS"),
		Persistence: PersistenceConfig{
			Backend:   v.GetString("PERSISTENCE_BACKEND"),
			CacheDir:  v.GetString("CACHE_DIR"),
			RedisAddr: v.GetString("REDIS_ADDR"),
			RedisDB:   v.GetInt("REDIS_DB"),
		},
	}, nil
}

// Package config loads application settings from configs/config.yml and
// WATCHLIST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix         = "WATCHLIST"
	defaultConfigDir  = "configs"
	defaultConfigName = "config"
)

type Config struct {
	Port      string
	SecretKey string
	DB        DBConfig
	Session   SessionConfig
	Log       LogConfig
	Password  PasswordConfig
}

type DBConfig struct {
	Path string
}

type SessionConfig struct {
	TTL    time.Duration
	Secure bool
}

type LogConfig struct {
	Level string
}

type PasswordConfig struct {
	Iterations int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("secret_key", "dev")
	v.SetDefault("db.path", "data.db")
	v.SetDefault("session.ttl", "720h")
	v.SetDefault("session.secure", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("password.iterations", 600000)
}

// Load reads the config file at path, or configs/config.yml when path is
// empty. A missing default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultConfigDir)
		v.SetConfigName(defaultConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:      v.GetString("port"),
		SecretKey: v.GetString("secret_key"),
		DB:        DBConfig{Path: v.GetString("db.path")},
		Session: SessionConfig{
			TTL:    v.GetDuration("session.ttl"),
			Secure: v.GetBool("session.secure"),
		},
		Log:      LogConfig{Level: v.GetString("log.level")},
		Password: PasswordConfig{Iterations: v.GetInt("password.iterations")},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("config: secret_key must not be empty")
	}
	if c.DB.Path == "" {
		return errors.New("config: db.path must not be empty")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("config: session.ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Password.Iterations <= 0 {
		return fmt.Errorf("config: password.iterations must be positive, got %d", c.Password.Iterations)
	}
	return nil
}

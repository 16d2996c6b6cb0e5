// Package config loads the service configuration from an optional .env file,
// an optional YAML file and the environment, in that order of precedence
// from lowest to highest.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Store     StoreConfig     `yaml:"store"`
	DB        DBConfig        `yaml:"db"`
	Board     BoardConfig     `yaml:"board"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig configures the token bucket in front of the API. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"2"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20"`
}

type StoreConfig struct {
	Driver      string `yaml:"driver" env:"STORE_DRIVER" env-default:"memory"`
	SeedSamples bool   `yaml:"seed_sample_tasks" env:"STORE_SEED_SAMPLE_TASKS" env-default:"false"`
}

type DBConfig struct {
	User     string `yaml:"user" env:"DB_USERNAME"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Address  string `yaml:"address" env:"DB_ADDRESS" env-default:"127.0.0.1:3306"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"taskdb"`
}

type BoardConfig struct {
	Timezone string `yaml:"timezone" env:"BOARD_TIMEZONE" env-default:"UTC"`
}

// Load reads envFile (if it exists) into the process environment and then
// fills Config from configPath (if set) and the environment.
func Load(envFile, configPath string) (Config, error) {
	var cfg Config

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values cleanenv cannot check by type alone.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverMySQL:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if _, err := c.Board.Location(); err != nil {
		return err
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1, got %d", c.RateLimit.Burst)
	}
	return nil
}

// Location resolves the board timezone.
func (b BoardConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid board timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

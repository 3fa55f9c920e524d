package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidStartingPlayer = errors.New("starting player must be X or O")

type Config struct {
	LogLevel       string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	StartingPlayer string `yaml:"starting-player" env:"TICTACTOE_STARTING_PLAYER" env-default:"X"`
	NoColor        bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	Redis          Redis  `yaml:"redis"`
}

// Redis configures the optional event publisher. Nothing is stored, events are only published.
type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"TICTACTOE_REDIS_CHANNEL" env-default:"tictactoe:events"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadEnv - config from defaults and environment only, for running without a config file.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) normalize() error {
	that.StartingPlayer = strings.ToUpper(strings.TrimSpace(that.StartingPlayer))

	if that.StartingPlayer != "X" && that.StartingPlayer != "O" {
		return fmt.Errorf("%w: got %q", ErrInvalidStartingPlayer, that.StartingPlayer)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Players  Players `yaml:"players"`
	Rematch  Rematch `yaml:"rematch"`
	Render   Render  `yaml:"render"`

	// Source is the file the config was read from, empty when only env and defaults were used.
	Source string `yaml:"-"`
}

type Players struct {
	First  string `yaml:"first" env:"PLAYER_FIRST" env-default:"X"`
	Second string `yaml:"second" env:"PLAYER_SECOND" env-default:"O"`
}

type Rematch struct {
	Yes []string `yaml:"yes" env:"REMATCH_YES" env-default:"yes,y"`
	No  []string `yaml:"no" env:"REMATCH_NO" env-default:"no,n"`
}

type Render struct {
	NoColor   bool   `yaml:"no-color" env:"CONNECTFOUR_NO_COLOR"`
	Delimiter string `yaml:"delimiter" env:"RENDER_DELIMITER" env-default:"|"`
}

// MustLoad - loads .env (if any), then the config file at path, then env overrides.
// A missing config file falls back to env and defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
		config.Source = path
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to access config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks the config and trims the player marks and rematch answers in place.
func (that *Config) Validate() error {
	that.Players.First = strings.TrimSpace(that.Players.First)
	that.Players.Second = strings.TrimSpace(that.Players.Second)

	if that.Players.First == "" || that.Players.Second == "" {
		return fmt.Errorf("%w: player marks must not be empty", apperror.ErrInvalidConfig)
	}

	if strings.EqualFold(that.Players.First, that.Players.Second) {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidConfig, apperror.ErrPlayersNotDistinct)
	}

	yes, err := normalizeAnswers(that.Rematch.Yes)
	if err != nil {
		return fmt.Errorf("%w: rematch yes: %w", apperror.ErrInvalidConfig, err)
	}

	no, err := normalizeAnswers(that.Rematch.No)
	if err != nil {
		return fmt.Errorf("%w: rematch no: %w", apperror.ErrInvalidConfig, err)
	}

	for _, answer := range yes {
		if slices.Contains(no, answer) {
			return fmt.Errorf("%w: %q is both a yes and a no", apperror.ErrInvalidConfig, answer)
		}
	}

	that.Rematch.Yes, that.Rematch.No = yes, no

	if that.Render.Delimiter == "" {
		return fmt.Errorf("%w: render delimiter must not be empty", apperror.ErrInvalidConfig)
	}

	return nil
}

// normalizeAnswers trims and lower-cases answers, rejecting blank ones.
func normalizeAnswers(answers []string) ([]string, error) {
	if len(answers) == 0 {
		return nil, apperror.ErrEmptyAcceptedValues
	}

	normalized := make([]string, 0, len(answers))
	for _, answer := range answers {
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer == "" {
			return nil, fmt.Errorf("%w: blank answer", apperror.ErrEmptyAcceptedValues)
		}

		normalized = append(normalized, answer)
	}

	return normalized, nil
}

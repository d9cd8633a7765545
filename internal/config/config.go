package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Prompt modes understood by the console front ends.
const (
	PromptAuto = "auto"
	PromptForm = "form"
	PromptLine = "line"
)

// Config is the configuration of a console front end.
type Config struct {
	// LogLevel is a zerolog level name. Logs go to stderr.
	LogLevel string `yaml:"log_level"`
	// Prompt selects how menu choices and values are read: "form" uses
	// interactive terminal forms, "line" reads plain lines and "auto"
	// picks form when both stdin and stdout are terminals.
	Prompt string `yaml:"prompt"`
	// Color enables styled output.
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: zerolog.WarnLevel.String(),
		Prompt:   PromptAuto,
		Color:    true,
	}
}

// Load reads a YAML file on top of Default. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing. An empty
// path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the values of the configuration.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Prompt {
	case PromptAuto, PromptForm, PromptLine:
	default:
		return fmt.Errorf("config: %w %q", ErrUnknownPromptMode, c.Prompt)
	}
	return nil
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.NoLevel, fmt.Errorf("config: %w %q", ErrUnknownLogLevel, c.LogLevel)
	}
	return level, nil
}

// LoadDotEnv loads environment variables from path. Missing files are
// ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

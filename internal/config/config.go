package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values read from the config file.
const (
	EnvFraction  = "TEXTSUM_FRACTION"
	EnvTokenizer = "TEXTSUM_TOKENIZER"
	EnvLogLevel  = "TEXTSUM_LOG_LEVEL"
	EnvLogFile   = "TEXTSUM_LOG_FILE"
)

// TokenizerConfig selects the sentence splitter implementation.
type TokenizerConfig struct {
	Type string `yaml:"type"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type     string  `yaml:"type"`
	Fraction float64 `yaml:"fraction"`
}

// LogConfig controls log level and optional rotating file output.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// TUIConfig configures the interactive viewer.
type TUIConfig struct {
	FractionStep float64 `yaml:"fraction_step"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Tokenizer  TokenizerConfig  `yaml:"tokenizer"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Log        LogConfig        `yaml:"log"`
	TUI        TUIConfig        `yaml:"tui"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, applyEnv(cfg)
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	return &cfg, applyEnv(&cfg)
}

// LoadDefault tries ./config.yaml first, then ~/.config/textsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/textsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, applyEnv(cfg)
}

// LoadDotEnv loads variables from the given .env files (or ./.env) without
// overriding ones already set. Only a missing implicit ./.env is tolerated.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && len(files) == 0 && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the built-in configuration.
func Default() *AppConfig { return defaultConfig() }

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textsum", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Tokenizer:  TokenizerConfig{Type: "punkt"},
		Summarizer: SummarizerConfig{Type: "frequency", Fraction: 0.3},
		Log:        LogConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28, Compress: true},
		TUI:        TUIConfig{FractionStep: 0.05},
	}
}

// applyConfigDefaults fills zero values left out of a partial file. A zero
// fraction is taken as unset; use the flag or env var to force zero.
func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Tokenizer.Type == "" {
		cfg.Tokenizer.Type = def.Tokenizer.Type
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = def.Summarizer.Type
	}
	if cfg.Summarizer.Fraction == 0 {
		cfg.Summarizer.Fraction = def.Summarizer.Fraction
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.File != "" {
		if cfg.Log.MaxSizeMB == 0 {
			cfg.Log.MaxSizeMB = def.Log.MaxSizeMB
		}
		if cfg.Log.MaxBackups == 0 {
			cfg.Log.MaxBackups = def.Log.MaxBackups
		}
		if cfg.Log.MaxAgeDays == 0 {
			cfg.Log.MaxAgeDays = def.Log.MaxAgeDays
		}
	}
	if cfg.TUI.FractionStep <= 0 {
		cfg.TUI.FractionStep = def.TUI.FractionStep
	}
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvFraction); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFraction, err)
		}
		cfg.Summarizer.Fraction = f
	}
	if v := os.Getenv(EnvTokenizer); v != "" {
		cfg.Tokenizer.Type = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	return nil
}

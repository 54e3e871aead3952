package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings Lander needs to reach the tower backend.
type Config struct {
	BaseURL   string
	PollEvery time.Duration
	LogDir    string
	LogLevel  string
}

const (
	defaultConfigPath = "~/.config/lander/config.toml"
	defaultLogDir     = "~/.local/state/lander"
	defaultBaseURL    = "http://127.0.0.1:8080"
	defaultLogLevel   = "info"
	defaultPollEvery  = time.Second
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Load locates and parses the lander config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL     string `toml:"base_url"`
		PollSeconds int    `toml:"poll_seconds"`
		LogDir      string `toml:"log_dir"`
		LogLevel    string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(raw.PollSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if strings.TrimSpace(raw.LogLevel) != "" {
		level, err := NormalizeLevel(raw.LogLevel)
		if err != nil {
			return Config{}, fmt.Errorf("log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// NormalizeLevel lowercases a log level name and rejects unknown ones.
func NormalizeLevel(v string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(v))
	if !validLevels[level] {
		return "", fmt.Errorf("invalid log level %q", v)
	}
	return level, nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		BaseURL:   defaultBaseURL,
		PollEvery: defaultPollEvery,
		LogDir:    mustExpand(defaultLogDir),
		LogLevel:  defaultLogLevel,
	}
}

// LogPath returns the path to the operator log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/lander.log")
	}
	return filepath.Join(c.LogDir, "lander.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

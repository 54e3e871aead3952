// Package prefs handles Lander user preferences persistence.
// Preferences are stored in ~/.config/lander/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for Lander.
type Prefs struct {
	Theme    string `toml:"theme"`
	LogLines int    `toml:"log_lines"`
}

const (
	defaultPrefsPath = "~/.config/lander/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultLogLines  = 200
	maxLogLines      = 5000
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, LogLines: defaultLogLines}
}

// Load reads preferences from the given path. Any problem reading or parsing
// the file yields defaults; preferences are never worth failing startup for.
func Load(path string) Prefs {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return prefs
	}

	var stored Prefs
	if err := toml.Unmarshal(data, &stored); err != nil {
		return prefs
	}

	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		prefs.Theme = theme
	}
	if stored.LogLines > 0 {
		prefs.LogLines = min(stored.LogLines, maxLogLines)
	}
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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

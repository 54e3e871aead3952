package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/five82/lander/internal/config"
	"github.com/five82/lander/internal/logging"
	"github.com/five82/lander/internal/prefs"
	"github.com/five82/lander/internal/tower"
	"github.com/five82/lander/internal/ui"
)

// Options configure the Lander application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/lander/prefs.toml
	BaseURL    string
	PollEvery  int // seconds; zero uses config
	LogLevel   string
}

// Run boots the Lander TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	client, err := tower.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("init tower client: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger.Info("configuration loaded",
		slog.String("base_url", client.BaseURL()),
		slog.Duration("poll_every", cfg.PollEvery),
		slog.String("log_level", cfg.LogLevel),
		slog.String("theme", userPrefs.Theme))

	err = ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		BaseURL:   client.BaseURL(),
		Logger:    logger.Logger,
		LogPath:   logger.LogFile,
		PollTick:  cfg.PollEvery,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogLines:  userPrefs.LogLines,
	})
	if err != nil {
		logger.Error("ui exited with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("lander stopped")
	return nil
}

// resolveConfig loads the config file and applies command line overrides.
func resolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if v := strings.TrimSpace(opts.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if opts.PollEvery > 0 {
		cfg.PollEvery = time.Duration(opts.PollEvery) * time.Second
	}
	if strings.TrimSpace(opts.LogLevel) != "" {
		level, err := config.NormalizeLevel(opts.LogLevel)
		if err != nil {
			return config.Config{}, err
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

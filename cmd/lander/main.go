package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/lander/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/lander/config.toml)")
	baseURL := flag.String("url", "", "tower backend base URL (optional)")
	pollSeconds := flag.Int("poll", 0, "status poll interval in seconds (optional, defaults to 1s)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		BaseURL:    *baseURL,
		LogLevel:   *logLevel,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lander: %v\n", err)
		return 1
	}
	return 0
}

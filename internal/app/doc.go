// Package app is the composition root for Lander.
//
// Run loads the TOML config (command line values win over the file), opens
// the rotating JSON operator log, builds the tower HTTP client, reads the
// user's UI preferences and then hands everything to ui.Run, which blocks
// until the user quits or the context is cancelled.
//
// Startup problems (an unreadable config, an invalid log level, a log file
// that cannot be created, a malformed base URL) are returned to the caller.
// Once the UI is running, backend failures are logged and shown in the
// interface instead.
//
// Usage:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := app.Run(ctx, app.Options{PollEvery: 1}); err != nil {
//		log.Fatalf("lander failed: %v", err)
//	}
package app

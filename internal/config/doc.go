// Package config handles loading and parsing the Lander configuration file.
//
// # Overview
//
// Lander needs very little configuration: where the tower backend lives, how
// often to poll it, and where to write the operator log. All of it lives in a
// single TOML file, and every field is optional.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/lander/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/lander/config.toml
//   - Backend: http://127.0.0.1:8080
//   - Poll interval: 1 second
//   - Log directory: ~/.local/state/lander
//   - Operator log: <log_dir>/lander.log
//   - Log level: info
//
// # TOML Format
//
//	base_url = "http://127.0.0.1:8080"
//	poll_seconds = 1
//	log_dir = "~/.local/state/lander"
//	log_level = "info"
//
// Tilde expansion is performed on log_dir. log_level must be one of debug,
// info, warn or error.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unknown log levels
//
// Missing config files are NOT an error. Lander runs against a local backend
// out of the box.
package config

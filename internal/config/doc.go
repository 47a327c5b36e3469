// Package config handles loading and validation of teleproj configuration.
//
// Configuration is read from ~/.config/teleproj/config.toml. The file is
// optional; every setting has a default.
//
// # Configuration Sources (highest priority first)
//
//   - TELEPROJ_STORE env var: location of the saved project list
//   - TELEPROJ_CONFIG env var: alternative config file location
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - store_path: the project list document (default: "~/.teleproj.toml")
//   - check_missing: mark projects whose directory is gone in --list (default: true)
//   - [theme] name: "default", "none", "nord" or "dracula"
//
// Example:
//
//	store_path = "~/Dropbox/teleproj.toml"
//	check_missing = false
//
//	[theme]
//	name = "nord"
//	accent = "#ff79c6"
//
// # Path Validation
//
// store_path must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config

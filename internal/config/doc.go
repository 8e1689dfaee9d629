// Package config loads and validates the tool's TOML configuration.
//
// Load resolves the config file (explicit path, then ~/.config/optout/
// config.toml, then ./optout.toml), overlays a local .env file when present,
// applies environment variable overrides, expands and normalizes paths, and
// validates the result. A missing config file is not an error; defaults
// apply.
package config

// Package config loads termkey configuration from TOML files and
// environment variables, with optional live reload via fsnotify.
//
// Precedence, lowest to highest: built-in defaults, config file,
// TERMKEY_* environment variables.
package config

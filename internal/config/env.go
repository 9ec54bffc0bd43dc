package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variables recognized by applyEnv.
const (
	envKittyKeyboard = "TERMKEY_KITTY_KEYBOARD"
	envLogLevel      = "TERMKEY_LOG_LEVEL"
	envLogFile       = "TERMKEY_LOG_FILE"
	envKeymapPath    = "TERMKEY_KEYMAP_PATH"
)

// applyEnv layers TERMKEY_* environment variables over the current
// values. Empty variables are ignored except TERMKEY_KEYMAP_PATH, where
// an empty value clears the search paths.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(envKittyKeyboard); ok && v != "" {
		c.Input.KittyKeyboard = parseBool(v, c.Input.KittyKeyboard)
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(envLogFile); v != "" {
		c.Logging.File = v
	}
	if v, ok := os.LookupEnv(envKeymapPath); ok {
		c.Keymaps.Paths = filepath.SplitList(v)
	}
}

// parseBool accepts the usual spellings of truth. Anything else keeps
// the fallback.
func parseBool(s string, fallback bool) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	default:
		return fallback
	}
}

// Package config loads, normalizes, and validates tubetag configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the TUBETAG_LOG_LEVEL and
// TUBETAG_HISTORY_DB environment fallbacks. A missing config file is not an
// error: every setting has a usable default.
package config

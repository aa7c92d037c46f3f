// Package config loads, normalizes, and validates filesorter configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as FILESORTER_LOG_LEVEL.
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config

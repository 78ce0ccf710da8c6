// Package config loads, normalizes, and validates timelapse configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// SCREENSHOTS_DIR and FRAMERATE. The Config type centralizes every knob the
// CLI needs, so the screenshot source, encoder choice, blur region, and output
// location are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

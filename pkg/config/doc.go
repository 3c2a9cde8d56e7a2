// Package config loads and validates the combogen run configuration.
//
// Sources are layered, later ones winning: embedded defaults, the user's
// config file (TOML or YAML), COMBOGEN_* environment variables and
// command-line overrides.
package config

// Package config provides configuration management for the leapframe CLI.
//
// Configuration is layered with koanf. Precedence, highest to lowest:
// flags > environment variables > config file > defaults.
package config

import (
	intconfig "github.com/leapstack-labs/leapframe/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	// Output is the render format: table, json, csv, or md.
	Output string `koanf:"output"`
	// MaxRows caps table output rows; 0 disables truncation.
	MaxRows int `koanf:"max_rows"`
	// NoColor disables styled table headers.
	NoColor bool `koanf:"no_color"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// Default configuration values - uses shared defaults from internal/config.
const (
	DefaultOutput  = intconfig.DefaultOutputFormat
	DefaultMaxRows = intconfig.DefaultMaxRows
)

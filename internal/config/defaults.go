// Package config holds defaults shared by the CLI and its config loader.
package config

// Default configuration values.
const (
	// DefaultOutputFormat is the renderer format used when none is set.
	DefaultOutputFormat = "table"
	// DefaultMaxRows caps how many rows the renderer prints before
	// truncating with a trailer. Zero disables truncation.
	DefaultMaxRows = 20
)

package commands

import (
	"os"
	"strconv"

	"github.com/leapstack-labs/leapframe/internal/cli/config"
	"github.com/leapstack-labs/leapframe/internal/render"
)

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables. The fallback lets commands run standalone in tests
// without the root command's config loading.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	output := getEnvOrDefault("LEAPFRAME_OUTPUT", config.DefaultOutput)
	maxRows := config.DefaultMaxRows
	if v := os.Getenv("LEAPFRAME_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			maxRows = n
		}
	}

	return &config.Config{
		Output:  output,
		MaxRows: maxRows,
		NoColor: os.Getenv("LEAPFRAME_NO_COLOR") == "true",
		Verbose: os.Getenv("LEAPFRAME_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// renderOptions translates config into renderer options.
func renderOptions(cfg *config.Config) render.Options {
	return render.Options{
		Format:  cfg.Output,
		MaxRows: cfg.MaxRows,
		NoColor: cfg.NoColor,
	}
}

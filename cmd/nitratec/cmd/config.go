package cmd

import (
	"os"

	"github.com/nitrate-lang/nitratec/internal/config"
)

// loadConfig resolves the configuration in effect for a build: an
// explicit --config path, else ./nitratec.yaml if present, else
// config.Default().
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		if _, err := os.Stat("nitratec.yaml"); err == nil {
			path = "nitratec.yaml"
		}
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

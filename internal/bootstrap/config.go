// Package bootstrap wires configuration, backends, and the engine together
// for the service entrypoints.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/jonesrussell/profiler/internal/config"
	"github.com/jonesrussell/profiler/internal/logging"
)

const defaultConfigPath = "config.yml"

// LoadConfig loads configuration. Uses defaults if the file doesn't exist.
func LoadConfig() (*config.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logging.Logger, error) {
	var outputs []string
	if cfg.Logging.Output != "" {
		outputs = []string{cfg.Logging.Output}
	}
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
		OutputPaths: outputs,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger.With(logging.String("service", cfg.Service.Name)), nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values papervault cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.RepositoryDir) == "" {
		return errors.New("repository_dir is required")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level: unsupported value %q", c.Logging.Level)
	}
	if c.Juicer.Enabled {
		if strings.TrimSpace(c.Juicer.Binary) == "" {
			return errors.New("juicer binary is required when the juicer is enabled")
		}
		if strings.TrimSpace(c.Juicer.Image) == "" {
			return errors.New("juicer image is required when the juicer is enabled")
		}
	}
	if c.Intake.PollSeconds <= 0 {
		return fmt.Errorf("intake poll_seconds must be positive, got %d", c.Intake.PollSeconds)
	}
	return nil
}

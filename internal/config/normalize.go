package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeJuicer()
	c.normalizeIntake()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"repository_dir", &c.Paths.RepositoryDir},
		{"intake_dir", &c.Paths.IntakeDir},
		{"log_dir", &c.Paths.LogDir},
	}
	for _, field := range fields {
		trimmed := strings.TrimSpace(*field.value)
		if trimmed == "" {
			*field.value = ""
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizeJuicer() {
	defaults := Default().Juicer
	if strings.TrimSpace(c.Juicer.Binary) == "" {
		c.Juicer.Binary = defaults.Binary
	}
	if strings.TrimSpace(c.Juicer.Image) == "" {
		c.Juicer.Image = defaults.Image
	}
	if c.Juicer.TimeoutSeconds <= 0 {
		c.Juicer.TimeoutSeconds = defaults.TimeoutSeconds
	}
}

func (c *Config) normalizeIntake() {
	if c.Intake.PollSeconds <= 0 {
		c.Intake.PollSeconds = Default().Intake.PollSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = Default().Logging.Format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = Default().Logging.Level
	}
}

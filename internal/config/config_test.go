package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("config file should not exist")
	}
	if resolved != path {
		t.Fatalf("resolved path mismatch: %q != %q", resolved, path)
	}
	defaults := Default()
	if cfg.Juicer.Image != defaults.Juicer.Image {
		t.Fatalf("juicer image not defaulted: %q", cfg.Juicer.Image)
	}
	if cfg.Intake.PollSeconds != defaults.Intake.PollSeconds {
		t.Fatalf("poll seconds not defaulted: %d", cfg.Intake.PollSeconds)
	}
	if !filepath.IsAbs(cfg.Paths.RepositoryDir) {
		t.Fatalf("repository dir not expanded: %q", cfg.Paths.RepositoryDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
repository_dir = "` + filepath.Join(dir, "repo") + `"
intake_dir = "` + filepath.Join(dir, "intake") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[juicer]
enabled = false

[intake]
poll_seconds = 30

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("config file should exist")
	}
	if cfg.Juicer.Enabled {
		t.Fatal("juicer should be disabled")
	}
	if cfg.Intake.PollSeconds != 30 {
		t.Fatalf("poll seconds: %d", cfg.Intake.PollSeconds)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging config: %+v", cfg.Logging)
	}
	if cfg.Paths.RepositoryDir != filepath.Join(dir, "repo") {
		t.Fatalf("repository dir: %q", cfg.Paths.RepositoryDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		keyword string
	}{
		{"missing repository", func(c *Config) { c.Paths.RepositoryDir = "" }, "repository_dir"},
		{"bad log format", func(c *Config) { c.Logging.Format = "yaml" }, "format"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "level"},
		{"bad poll interval", func(c *Config) { c.Intake.PollSeconds = -1 }, "poll_seconds"},
		{"juicer without image", func(c *Config) { c.Juicer.Image = " " }, "image"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Paths.RepositoryDir = "/tmp/repo"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.keyword) {
				t.Fatalf("error %q does not mention %q", err, tc.keyword)
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[juicer]") {
		t.Fatal("sample config missing juicer section")
	}

	if err := CreateSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.RepositoryDir = filepath.Join(dir, "repo")
	cfg.Paths.IntakeDir = filepath.Join(dir, "intake")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{cfg.Paths.RepositoryDir, cfg.Paths.IntakeDir, cfg.Paths.LogDir} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory %q missing: %v", d, err)
		}
	}
}

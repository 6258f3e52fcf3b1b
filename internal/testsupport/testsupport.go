// Package testsupport provides shared helpers for papervault tests.
package testsupport

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"papervault/internal/config"
	"papervault/internal/repository"
)

// NewRepository opens a repository rooted in a per-test temp directory.
func NewRepository(t testing.TB) *repository.Repository {
	t.Helper()

	repo, err := repository.Open(filepath.Join(t.TempDir(), "repository"), nil)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	return repo
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.RepositoryDir = filepath.Join(base, "repository")
	cfg.Paths.IntakeDir = filepath.Join(base, "intake")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Juicer.Enabled = false
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// StageWithFragment stages a bundle and writes content into the given
// fragment.
func StageWithFragment(t testing.TB, repo *repository.Repository, kind repository.Kind, content string) *repository.StagingBundle {
	t.Helper()

	ctx := context.Background()
	bundle, err := repo.Stage(ctx)
	if err != nil {
		t.Fatalf("stage bundle: %v", err)
	}
	WriteFragment(t, bundle, kind, content)
	return bundle
}

// WriteFragment writes content into one fragment of a staging bundle.
func WriteFragment(t testing.TB, bundle *repository.StagingBundle, kind repository.Kind, content string) {
	t.Helper()

	w, err := bundle.Write(context.Background(), kind)
	if err != nil {
		t.Fatalf("open fragment %s: %v", kind, err)
	}
	if _, err := io.Copy(w, strings.NewReader(content)); err != nil {
		w.Close()
		t.Fatalf("write fragment %s: %v", kind, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close fragment %s: %v", kind, err)
	}
}

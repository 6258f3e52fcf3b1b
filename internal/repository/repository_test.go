package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"papervault/internal/docid"
)

func openTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "repository"), nil)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	return repo
}

func TestOpenCreatesRootIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "repository")

	first, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(first.Path())
	if err != nil || !info.IsDir() {
		t.Fatalf("root not created: %v", err)
	}

	if _, err := Open(path, nil); err != nil {
		t.Fatalf("second open failed: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("", nil); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestStageCreatesDirectory(t *testing.T) {
	repo := openTestRepository(t)

	bundle, err := repo.Stage(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(bundle.Path())
	if err != nil || !info.IsDir() {
		t.Fatalf("staging directory missing: %v", err)
	}
	want := filepath.Join(repo.Path(), "staging", bundle.ID().String())
	if bundle.Path() != want {
		t.Fatalf("bundle path %q, want %q", bundle.Path(), want)
	}
}

func TestStageProducesDistinctIdentifiers(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	seen := make(map[docid.DocID]struct{})
	for i := 0; i < 64; i++ {
		bundle, err := repo.Stage(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if _, dup := seen[bundle.ID()]; dup {
			t.Fatalf("duplicate identifier: %v", bundle.ID())
		}
		seen[bundle.ID()] = struct{}{}
	}
}

func TestStageHonorsCancellation(t *testing.T) {
	repo := openTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.Stage(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

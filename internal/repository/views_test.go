package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"papervault/internal/docid"
	"papervault/internal/metadata"
)

func TestListEmptyBeforeFirstCommit(t *testing.T) {
	repo := openTestRepository(t)

	bundles, err := repo.Inbox().List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(bundles) != 0 {
		t.Fatalf("expected empty listing, got %d entries", len(bundles))
	}
}

func TestListOrdersByModTimeThenIdentifier(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	var ids []docid.DocID
	for i := 0; i < 3; i++ {
		staged, err := repo.Stage(ctx)
		if err != nil {
			t.Fatal(err)
		}
		inboxed, err := staged.Commit(ctx)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, inboxed.ID())
	}

	// Force distinct, reverse-chronological mtimes so sorting is observable.
	base := time.Now().Add(-time.Hour)
	for i, id := range ids {
		mtime := base.Add(time.Duration(len(ids)-i) * time.Minute)
		path := filepath.Join(repo.Path(), "inbox", id.String())
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}

	bundles, err := repo.Inbox().List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(bundles) != len(ids) {
		t.Fatalf("listed %d bundles, want %d", len(bundles), len(ids))
	}
	// Oldest mtime first: the reversed staging order.
	for i := range ids {
		if bundles[i].ID() != ids[len(ids)-1-i] {
			t.Fatalf("position %d holds %v, want %v", i, bundles[i].ID(), ids[len(ids)-1-i])
		}
	}
}

func TestListBreaksTimestampTiesByIdentifier(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	var ids []docid.DocID
	for i := 0; i < 4; i++ {
		staged, err := repo.Stage(ctx)
		if err != nil {
			t.Fatal(err)
		}
		inboxed, err := staged.Commit(ctx)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, inboxed.ID())
	}

	shared := time.Now().Add(-time.Hour)
	for _, id := range ids {
		path := filepath.Join(repo.Path(), "inbox", id.String())
		if err := os.Chtimes(path, shared, shared); err != nil {
			t.Fatal(err)
		}
	}

	bundles, err := repo.Inbox().List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(bundles); i++ {
		if bundles[i-1].ID().Compare(bundles[i].ID()) >= 0 {
			t.Fatalf("tie not broken by identifier order at position %d", i)
		}
	}
}

func TestListFailsOnForeignEntry(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	staged, err := repo.Stage(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := staged.Commit(ctx); err != nil {
		t.Fatal(err)
	}

	foreign := filepath.Join(repo.Path(), "inbox", ".DS_Store")
	if err := os.WriteFile(foreign, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Inbox().List(ctx); !errors.Is(err, docid.ErrInvalidID) {
		t.Fatalf("error %v, want ErrInvalidID", err)
	}
}

func TestGetReturnsNilForAbsentBundle(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	id := docid.New()
	if got, err := repo.Inbox().Get(ctx, id); err != nil || got != nil {
		t.Fatalf("inbox get: %v, %v", got, err)
	}
	if got, err := repo.Archive().Get(ctx, id); err != nil || got != nil {
		t.Fatalf("archive get: %v, %v", got, err)
	}
}

func TestEndToEndScenario(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	staged, err := repo.Stage(ctx)
	if err != nil {
		t.Fatal(err)
	}
	writeFragment(t, staged, KindDocument, []byte("%PDF-1.4 sample document"))

	inboxed, err := staged.Commit(ctx)
	if err != nil {
		t.Fatal(err)
	}

	listed, err := repo.Inbox().List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0].ID() != inboxed.ID() {
		t.Fatalf("inbox listing mismatch: %v", listed)
	}

	md := metadata.New(time.Now().UTC())
	md.Pages = 3
	if err := inboxed.WriteMetadata(ctx, md); err != nil {
		t.Fatal(err)
	}

	archived, err := inboxed.Archive(ctx)
	if err != nil {
		t.Fatal(err)
	}

	listed, err = repo.Inbox().List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 0 {
		t.Fatalf("inbox should be empty after archive, got %d", len(listed))
	}

	found, err := repo.Archive().Get(ctx, archived.ID())
	if err != nil {
		t.Fatal(err)
	}
	if found == nil {
		t.Fatal("archived bundle not found")
	}
	loaded, err := found.ReadMetadata(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Pages != 3 {
		t.Fatalf("pages mismatch: %d", loaded.Pages)
	}
}

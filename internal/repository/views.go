package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"papervault/internal/docid"
)

// Inbox enumerates and looks up committed bundles awaiting review.
type Inbox struct {
	repo *Repository
}

// List returns every inbox bundle ordered by (modification time ascending,
// identifier ascending) so enumeration is reproducible even with equal
// timestamps. Any entry whose name does not parse as an identifier fails the
// whole listing with ErrInvalidID; foreign files must not share the
// partition directory.
func (i Inbox) List(ctx context.Context) ([]*InboxedBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(i.repo.partitionPath(partitionInbox))
	if err != nil {
		// The partition is created lazily; before the first commit there is
		// nothing to list.
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list inbox: %w", err)
	}

	type listed struct {
		modified time.Time
		bundle   *InboxedBundle
	}
	items := make([]listed, 0, len(entries))
	for _, entry := range entries {
		id, err := docid.Parse(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("inbox entry %q: %w", entry.Name(), err)
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat inbox entry %q: %w", entry.Name(), err)
		}
		items = append(items, listed{
			modified: info.ModTime(),
			bundle:   &InboxedBundle{bundle{id: id, repo: i.repo, part: partitionInbox}},
		})
	}

	sort.Slice(items, func(a, b int) bool {
		if !items[a].modified.Equal(items[b].modified) {
			return items[a].modified.Before(items[b].modified)
		}
		return items[a].bundle.ID().Compare(items[b].bundle.ID()) < 0
	})

	bundles := make([]*InboxedBundle, len(items))
	for idx, item := range items {
		bundles[idx] = item.bundle
	}
	return bundles, nil
}

// Get probes for an inbox bundle by identifier. Absence is an expected
// outcome reported as a nil handle with a nil error. The probe is advisory: a
// concurrent transition can invalidate it before the next operation.
func (i Inbox) Get(ctx context.Context, id docid.DocID) (*InboxedBundle, error) {
	b := &InboxedBundle{bundle{id: id, repo: i.repo, part: partitionInbox}}
	if err := probe(ctx, b.Path()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("probe inbox bundle %s: %w", id, err)
	}
	return b, nil
}

// Archive looks up finalized bundles.
type Archive struct {
	repo *Repository
}

// Get probes for an archived bundle by identifier. Absence is an expected
// outcome reported as a nil handle with a nil error.
func (a Archive) Get(ctx context.Context, id docid.DocID) (*ArchivedBundle, error) {
	b := &ArchivedBundle{bundle{id: id, repo: a.repo, part: partitionArchive}}
	if err := probe(ctx, b.Path()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("probe archive bundle %s: %w", id, err)
	}
	return b, nil
}

func probe(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := os.Stat(path)
	return err
}

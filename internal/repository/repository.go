package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"papervault/internal/docid"
	"papervault/internal/logging"
)

type partition string

const (
	partitionStaging partition = "staging"
	partitionInbox   partition = "inbox"
	partitionArchive partition = "archive"
)

// Repository owns the root directory of the bundle store.
type Repository struct {
	root   string
	logger *slog.Logger
}

// Open ensures the repository root exists and returns a handle to it. Opening
// an existing repository is idempotent. Partition subdirectories are created
// lazily by the operations that need them. A nil logger disables logging.
func Open(path string, logger *slog.Logger) (*Repository, error) {
	if path == "" {
		return nil, errors.New("repository path required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With("component", "repository")

	logger.Info("opening repository", "path", path)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Repository{root: path, logger: logger}, nil
}

// Path returns the repository root.
func (r *Repository) Path() string {
	return r.root
}

// Inbox returns a view over the inbox partition.
func (r *Repository) Inbox() Inbox {
	return Inbox{repo: r}
}

// Archive returns a view over the archive partition.
func (r *Repository) Archive() Archive {
	return Archive{repo: r}
}

// Stage creates a bundle with a fresh identifier under the staging partition
// and returns its handle. Safe to call concurrently; identifiers never alias.
func (r *Repository) Stage(ctx context.Context) (*StagingBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := &StagingBundle{bundle{id: docid.New(), repo: r, part: partitionStaging}}
	r.logger.Info("staging bundle", "id", b.ID())
	if err := os.MkdirAll(b.Path(), 0o755); err != nil {
		return nil, fmt.Errorf("create staging bundle %s: %w", b.ID(), err)
	}
	return b, nil
}

func (r *Repository) partitionPath(p partition) string {
	return filepath.Join(r.root, string(p))
}

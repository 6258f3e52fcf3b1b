package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	"papervault/internal/metadata"
)

// Write opens the fragment for exclusive create-or-truncate writing,
// replacing any prior content for that kind. The caller must close the
// returned stream on every path. Only staging bundles accept fragment writes.
func (b *StagingBundle) Write(ctx context.Context, kind Kind) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := b.FragmentPath(kind)
	b.repo.logger.Info("writing fragment", "id", b.id, "fragment", kind)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("write fragment %s of %s: %w", kind, b.id, err)
	}
	return file, nil
}

// Commit atomically relocates the bundle from staging to the inbox and
// returns the inboxed handle. The receiver must not be used afterwards.
func (b *StagingBundle) Commit(ctx context.Context) (*InboxedBundle, error) {
	dst := &InboxedBundle{bundle{id: b.id, repo: b.repo, part: partitionInbox}}
	if err := b.repo.move(ctx, b.bundle, dst.bundle); err != nil {
		return nil, err
	}
	return dst, nil
}

// Delete removes the staged bundle and everything in it. The receiver must
// not be used afterwards.
func (b *StagingBundle) Delete(ctx context.Context) error {
	return b.repo.remove(ctx, b.bundle)
}

// WriteMetadata serializes the record into the metadata fragment, replacing
// any previous version. Metadata is only mutable while the bundle sits in the
// inbox.
func (b *InboxedBundle) WriteMetadata(ctx context.Context, md *metadata.Metadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := b.FragmentPath(KindMetadata)
	b.repo.logger.Info("writing metadata", "id", b.id)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("write metadata of %s: %w", b.id, err)
	}
	if err := md.Save(file); err != nil {
		file.Close()
		return fmt.Errorf("metadata of %s: %w", b.id, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write metadata of %s: %w", b.id, err)
	}
	return nil
}

// Archive atomically relocates the bundle from the inbox to the archive and
// returns the final, immutable handle. The receiver must not be used
// afterwards.
func (b *InboxedBundle) Archive(ctx context.Context) (*ArchivedBundle, error) {
	dst := &ArchivedBundle{bundle{id: b.id, repo: b.repo, part: partitionArchive}}
	if err := b.repo.move(ctx, b.bundle, dst.bundle); err != nil {
		return nil, err
	}
	return dst, nil
}

// Delete removes the inboxed bundle and everything in it. The receiver must
// not be used afterwards.
func (b *InboxedBundle) Delete(ctx context.Context) error {
	return b.repo.remove(ctx, b.bundle)
}

// move renames src's directory into dst's partition. The rename is the only
// transition primitive, so observers see the bundle fully in one partition or
// the other, never both. Losing a race surfaces as ErrNotFound (source gone)
// or ErrConflict (destination taken).
func (r *Repository) move(ctx context.Context, src, dst bundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.partitionPath(dst.part), 0o755); err != nil {
		return fmt.Errorf("ensure %s partition: %w", dst.part, err)
	}

	// A vanished source reports ErrNotFound even when the destination is
	// occupied, so a stale handle after a completed transition stays
	// distinguishable from a genuine destination collision.
	if _, err := os.Lstat(src.Path()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s missing from %s", ErrNotFound, src.id, src.part)
		}
		return fmt.Errorf("probe %s in %s: %w", src.id, src.part, err)
	}

	if _, err := os.Lstat(dst.Path()); err == nil {
		return fmt.Errorf("%w: %s already in %s", ErrConflict, src.id, dst.part)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("probe %s in %s: %w", src.id, dst.part, err)
	}

	r.logger.Info("moving bundle", "id", src.id, "from", string(src.part), "to", string(dst.part))
	if err := os.Rename(src.Path(), dst.Path()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("%w: %s missing from %s", ErrNotFound, src.id, src.part)
		case errors.Is(err, fs.ErrExist), errors.Is(err, syscall.ENOTEMPTY):
			return fmt.Errorf("%w: %s already in %s", ErrConflict, src.id, dst.part)
		default:
			return fmt.Errorf("move %s to %s: %w", src.id, dst.part, err)
		}
	}
	return nil
}

// remove deletes the bundle's directory tree. Partially populated bundles
// delete cleanly; a bundle that is already gone surfaces ErrNotFound so a
// lost delete race stays diagnosable.
func (r *Repository) remove(ctx context.Context, b bundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := os.Lstat(b.Path()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s missing from %s", ErrNotFound, b.id, b.part)
		}
		return fmt.Errorf("probe %s in %s: %w", b.id, b.part, err)
	}

	r.logger.Info("deleting bundle", "id", b.id, "partition", string(b.part))
	if err := os.RemoveAll(b.Path()); err != nil {
		return fmt.Errorf("delete %s from %s: %w", b.id, b.part, err)
	}
	return nil
}

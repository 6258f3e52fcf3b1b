package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"papervault/internal/docid"
	"papervault/internal/metadata"
)

// bundle carries the state shared by every lifecycle stage: the identifier,
// the owning repository, and the partition the directory currently lives in.
type bundle struct {
	id   docid.DocID
	repo *Repository
	part partition
}

// StagingBundle is a freshly created bundle. Fragments may be written; Commit
// moves it to the inbox, Delete abandons it.
type StagingBundle struct {
	bundle
}

// InboxedBundle is a committed bundle awaiting review. Metadata may be
// rewritten; Archive finalizes it, Delete discards it.
type InboxedBundle struct {
	bundle
}

// ArchivedBundle is a finalized bundle. It is immutable and permanent; only
// reads are possible.
type ArchivedBundle struct {
	bundle
}

// ID returns the bundle's identifier.
func (b *bundle) ID() docid.DocID {
	return b.id
}

// Path returns the bundle's directory.
func (b *bundle) Path() string {
	return filepath.Join(b.repo.partitionPath(b.part), b.id.String())
}

// FragmentPath returns the location of the given fragment inside the bundle.
func (b *bundle) FragmentPath(kind Kind) string {
	return filepath.Join(b.Path(), kind.Filename())
}

// Read opens the fragment for reading. An absent fragment is an expected
// outcome, reported as a nil reader with a nil error; the caller owns closing
// a non-nil reader.
func (b *bundle) Read(ctx context.Context, kind Kind) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := b.FragmentPath(kind)
	b.repo.logger.Debug("reading fragment", "id", b.id, "fragment", kind)
	file, err := os.Open(path)
	switch {
	case err == nil:
		return file, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	default:
		return nil, fmt.Errorf("read fragment %s of %s: %w", kind, b.id, err)
	}
}

// ReadPlaintext returns the extracted text fragment, failing with
// ErrMissingFragment when it has not been produced.
func (b *bundle) ReadPlaintext(ctx context.Context) (string, error) {
	reader, err := b.Read(ctx, KindPlaintext)
	if err != nil {
		return "", err
	}
	if reader == nil {
		return "", fmt.Errorf("%w: plaintext in bundle %s", ErrMissingFragment, b.id)
	}
	defer reader.Close()

	text, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read plaintext of %s: %w", b.id, err)
	}
	return string(text), nil
}

// ReadMetadata returns the decoded metadata fragment, failing with
// ErrMissingFragment when it has not been written.
func (b *bundle) ReadMetadata(ctx context.Context) (*metadata.Metadata, error) {
	reader, err := b.Read(ctx, KindMetadata)
	if err != nil {
		return nil, err
	}
	if reader == nil {
		return nil, fmt.Errorf("%w: metadata in bundle %s", ErrMissingFragment, b.id)
	}
	defer reader.Close()

	md, err := metadata.Load(reader)
	if err != nil {
		return nil, fmt.Errorf("metadata of %s: %w", b.id, err)
	}
	return md, nil
}

package intake

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"papervault/internal/juicer"
	"papervault/internal/repository"
)

// Ingest admits one file into the repository and returns the committed inbox
// handle. A nil engine skips extraction. On failure the staging bundle is
// deleted best-effort; the source file is never touched.
func Ingest(ctx context.Context, repo *repository.Repository, engine juicer.Juicer, sourcePath string, logger *slog.Logger) (*repository.InboxedBundle, error) {
	staged, err := repo.Stage(ctx)
	if err != nil {
		return nil, err
	}

	inboxed, err := ingestInto(ctx, staged, engine, sourcePath)
	if err != nil {
		if deleteErr := staged.Delete(ctx); deleteErr != nil && logger != nil {
			logger.Warn("abandoned staging bundle not cleaned up", "id", staged.ID(), "error", deleteErr)
		}
		return nil, err
	}
	return inboxed, nil
}

func ingestInto(ctx context.Context, staged *repository.StagingBundle, engine juicer.Juicer, sourcePath string) (*repository.InboxedBundle, error) {
	source, err := os.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("open source %s: %w", sourcePath, err)
	}
	defer source.Close()

	document, err := staged.Write(ctx, repository.KindDocument)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(document, source); err != nil {
		document.Close()
		return nil, fmt.Errorf("copy %s into bundle %s: %w", sourcePath, staged.ID(), err)
	}
	if err := document.Close(); err != nil {
		return nil, fmt.Errorf("copy %s into bundle %s: %w", sourcePath, staged.ID(), err)
	}

	if engine != nil {
		if err := engine.Extract(ctx, staged); err != nil {
			return nil, err
		}
	}

	return staged.Commit(ctx)
}

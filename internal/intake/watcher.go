package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"papervault/internal/config"
	"papervault/internal/juicer"
	"papervault/internal/logging"
	"papervault/internal/repository"
)

// Watcher polls the intake directory and ingests dropped files.
type Watcher struct {
	cfg    *config.Config
	repo   *repository.Repository
	engine juicer.Juicer
	logger *slog.Logger

	lockPath string
	lock     *flock.Flock
}

// NewWatcher constructs a watcher. The engine may be nil to ingest without
// extraction.
func NewWatcher(cfg *config.Config, repo *repository.Repository, engine juicer.Juicer, logger *slog.Logger) (*Watcher, error) {
	if cfg == nil || repo == nil {
		return nil, errors.New("watcher requires config and repository")
	}
	if strings.TrimSpace(cfg.Paths.IntakeDir) == "" {
		return nil, errors.New("intake_dir is required for watching")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockDir := cfg.Paths.LogDir
	if strings.TrimSpace(lockDir) == "" {
		lockDir = cfg.Paths.IntakeDir
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}

	lockPath := filepath.Join(lockDir, "papervault-watch.lock")
	return &Watcher{
		cfg:      cfg,
		repo:     repo,
		engine:   engine,
		logger:   logger.With("component", "intake"),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Run scans the intake directory until the context is canceled. It holds a
// file lock for its whole lifetime so only one watcher instance processes the
// directory.
func (w *Watcher) Run(ctx context.Context) error {
	ok, err := w.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire watch lock: %w", err)
	}
	if !ok {
		return errors.New("another intake watcher is already running")
	}
	defer func() {
		if err := w.lock.Unlock(); err != nil {
			w.logger.Warn("failed to release watch lock", "error", err)
		}
	}()

	w.logger.Info("intake watcher started", "dir", w.cfg.Paths.IntakeDir, "lock", w.lockPath)

	ticker := time.NewTicker(time.Duration(w.cfg.Intake.PollSeconds) * time.Second)
	defer ticker.Stop()

	for {
		if err := w.Scan(ctx); err != nil && !errors.Is(err, context.Canceled) {
			w.logger.Error("intake scan failed", "error", err)
		}
		select {
		case <-ctx.Done():
			w.logger.Info("intake watcher stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Scan ingests every regular file currently in the intake directory. Files
// that fail to ingest stay in place for the next scan; dotfiles are ignored.
func (w *Watcher) Scan(ctx context.Context) error {
	entries, err := os.ReadDir(w.cfg.Paths.IntakeDir)
	if err != nil {
		return fmt.Errorf("read intake directory: %w", err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		path := filepath.Join(w.cfg.Paths.IntakeDir, entry.Name())
		bundle, err := Ingest(ctx, w.repo, w.engine, path, w.logger)
		if err != nil {
			w.logger.Error("ingest failed", "file", entry.Name(), "error", err)
			continue
		}
		w.logger.Info("ingested file", "file", entry.Name(), "id", bundle.ID())

		if err := os.Remove(path); err != nil {
			w.logger.Warn("ingested file not removed from intake", "file", entry.Name(), "error", err)
		}
	}
	return nil
}

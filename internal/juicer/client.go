package juicer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"papervault/internal/config"
	"papervault/internal/logging"
	"papervault/internal/repository"
)

var commandContext = exec.CommandContext

// LogFragmentName is the bundle fragment holding the engine's combined
// stdout and stderr.
const LogFragmentName = "juicer.log"

// DefaultImage is the extraction container used when none is configured.
const DefaultImage = "adacta10/juicer"

// ErrExtraction marks engine runs that exited non-zero.
var ErrExtraction = errors.New("extraction failed")

// Juicer defines the extraction behaviour.
type Juicer interface {
	Extract(ctx context.Context, bundle *repository.StagingBundle) error
}

// Option configures the Docker client.
type Option func(*Docker)

// WithBinary overrides the container runtime binary (default "docker").
func WithBinary(binary string) Option {
	return func(d *Docker) {
		if binary != "" {
			d.binary = binary
		}
	}
}

// WithImage overrides the extraction image.
func WithImage(image string) Option {
	return func(d *Docker) {
		if image != "" {
			d.image = image
		}
	}
}

// WithTimeout bounds a single extraction run. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Docker) {
		d.timeout = timeout
	}
}

// Docker runs the extraction engine through the docker CLI.
type Docker struct {
	binary  string
	image   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewDocker constructs a Docker client using defaults.
func NewDocker(logger *slog.Logger, opts ...Option) *Docker {
	if logger == nil {
		logger = logging.NewNop()
	}
	d := &Docker{
		binary: "docker",
		image:  DefaultImage,
		logger: logger.With("component", "juicer"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFromConfig constructs a Docker client from application configuration.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) *Docker {
	return NewDocker(logger,
		WithBinary(cfg.Juicer.Binary),
		WithImage(cfg.Juicer.Image),
		WithTimeout(time.Duration(cfg.Juicer.TimeoutSeconds)*time.Second),
	)
}

// Extract runs the engine against the staged bundle. The bundle directory is
// mounted read-write so the engine writes derived fragments in place; its
// combined output lands in the juicer.log fragment. A non-zero exit status
// surfaces as ErrExtraction carrying the tail of that output.
func (d *Docker) Extract(ctx context.Context, bundle *repository.StagingBundle) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	args := []string{
		"run", "--rm",
		"--network", "none",
		"--env", "DID=" + bundle.ID().String(),
		"--volume", bundle.Path() + ":/juicer",
		d.image,
	}
	d.logger.Info("extracting bundle", "id", bundle.ID(), "image", d.image)

	cmd := commandContext(ctx, d.binary, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	logSink, err := bundle.Write(ctx, repository.OtherKind(LogFragmentName))
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		logSink.Close()
		return fmt.Errorf("start juicer: %w", err)
	}

	tail := newTailBuffer(2048)
	_, copyErr := io.Copy(io.MultiWriter(logSink, tail), stdout)
	closeErr := logSink.Close()
	waitErr := cmd.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			diagnostic := strings.TrimSpace(tail.String())
			if diagnostic == "" {
				diagnostic = "no output"
			}
			return fmt.Errorf("%w: bundle %s: exit status %d: %s",
				ErrExtraction, bundle.ID(), exitErr.ExitCode(), diagnostic)
		}
		return fmt.Errorf("run juicer for %s: %w", bundle.ID(), waitErr)
	}
	if copyErr != nil {
		return fmt.Errorf("capture juicer output for %s: %w", bundle.ID(), copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("write %s for %s: %w", LogFragmentName, bundle.ID(), closeErr)
	}
	return nil
}

var _ Juicer = (*Docker)(nil)

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	data  []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.data = append(t.data, p...)
	if len(t.data) > t.limit {
		t.data = t.data[len(t.data)-t.limit:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.data)
}

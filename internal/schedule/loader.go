package schedule

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/faizmokh/jadual/internal/files"
)

// Loader builds the Index used for the lifetime of the process.
type Loader struct {
	manager *files.Manager
	logger  *slog.Logger
}

// NewLoader wires a loader using the shared files.Manager.
func NewLoader(manager *files.Manager, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{manager: manager, logger: logger}
}

// Load reads the schedule override file when it exists and falls back to the
// built-in seed otherwise.
func (l *Loader) Load(ctx context.Context) (*Index, error) {
	if l == nil || l.manager == nil {
		return nil, errors.New("loader not initialized with file manager")
	}

	path := l.manager.SchedulePath()
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.DebugContext(ctx, "no schedule file, using seed", "path", path)
			return Seed(), nil
		}
		return nil, fmt.Errorf("open schedule: %w", err)
	}
	defer file.Close()

	index, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	l.logger.InfoContext(ctx, "schedule loaded", "path", path, "days", index.Len())
	return index, nil
}

package logging

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures New.
type Options struct {
	// Path enables file logging at debug level when non-empty.
	Path string
	// Prefix tags lines written through the standard log package.
	Prefix string
}

// New builds the process logger. Without a path every record is discarded,
// keeping the terminal clean for the TUI. The returned closer must be called
// on exit.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.Path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "jadual"
	}
	file, err := tea.LogToFile(opts.Path, prefix)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

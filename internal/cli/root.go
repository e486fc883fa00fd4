package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/jadual/internal/config"
	"github.com/faizmokh/jadual/internal/files"
	"github.com/faizmokh/jadual/internal/location"
	"github.com/faizmokh/jadual/internal/logging"
	"github.com/faizmokh/jadual/internal/schedule"
	"github.com/faizmokh/jadual/internal/ui"
	"github.com/faizmokh/jadual/internal/version"
)

// deps carries the collaborators every command shares.
type deps struct {
	cfg    config.Config
	repo   schedule.Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, d deps) *cobra.Command {
	var (
		dateFlag string
		langFlag string
	)

	cmd := &cobra.Command{
		Use:     "jadual",
		Short:   "Browse a field worker's daily schedule from your terminal.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := resolveSelection(d.cfg.Selection, dateFlag, langFlag)
			if err != nil {
				return err
			}

			var watcher location.Watcher
			if d.cfg.Location != nil {
				watcher = location.NewStatic(*d.cfg.Location)
			}

			m := ui.NewModel(ctx, ui.Options{
				Repo:      d.repo,
				Selection: sel,
				Watcher:   watcher,
				Logger:    d.logger,
			})
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Initially selected date in YYYY-MM-DD")
	cmd.Flags().StringVar(&langFlag, "lang", "", "Display language (en or es)")

	cmd.AddCommand(
		newDaysCommand(ctx, d),
		newTasksCommand(ctx, d),
		newClockCommand(ctx, d),
		newReportCommand(ctx, d),
		newProfileCommand(),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand loads configuration and the schedule, then executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	manager, err := files.NewManager("")
	if err != nil {
		return err
	}

	logPath := ""
	if cfg.DebugLog != "" {
		expanded, err := files.ExpandPath(cfg.DebugLog)
		if err != nil {
			return err
		}
		if logPath, err = manager.EnsureDir(manager.Path(expanded)); err != nil {
			return err
		}
	}
	logger, closer, err := logging.New(logging.Options{Path: logPath})
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	index, err := schedule.NewLoader(manager, logger).Load(ctx)
	if err != nil {
		return err
	}

	cmd := NewRootCommand(ctx, deps{
		cfg:    cfg,
		repo:   index,
		logger: logger,
		now:    time.Now,
	})
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/jadual/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

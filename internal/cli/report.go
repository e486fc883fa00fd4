package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jadual/internal/issue"
	"github.com/faizmokh/jadual/internal/profile"
)

func newReportCommand(ctx context.Context, d deps) *cobra.Command {
	var attachFlag string

	cmd := &cobra.Command{
		Use:   "report <text ...>",
		Short: "Report an issue, optionally attaching an image.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := issue.New(strings.Join(args, " "), attachFlag, d.now())
			if err != nil {
				return err
			}

			d.logger.LogAttrs(ctx, slog.LevelInfo, "issue reported",
				slog.String("id", report.ID.String()),
				slog.Bool("attachment", report.HasAttachment()),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Reporting Issue Successful")
			fmt.Fprintf(out, "id: %s\n", report.ID)
			if report.HasAttachment() {
				fmt.Fprintf(out, "attachment: %s\n", report.Attachment)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&attachFlag, "attach", "", "Path to an image to attach")

	return cmd
}

func newProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the field worker profile.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := profile.Default()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Greeting())
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Email: %s\n", p.Email)
			fmt.Fprintf(out, "Designation: %s\n", p.Designation)
		},
	}
}

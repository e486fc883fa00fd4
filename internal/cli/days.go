package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jadual/internal/schedule"
)

func newDaysCommand(ctx context.Context, d deps) *cobra.Command {
	var (
		monthFlag string
		langFlag  string
	)

	cmd := &cobra.Command{
		Use:   "days",
		Short: "List the days of a month, marking days that have tasks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := resolveMonth(monthFlag, d.cfg.Selection.Day)
			if err != nil {
				return err
			}
			lang := resolveLanguage(langFlag, d.cfg.Selection.Language)

			days := schedule.GenerateDays(year, month)
			d.logger.DebugContext(ctx, "generated days", "year", year, "month", month, "count", len(days))

			out := cmd.OutOrStdout()
			for _, day := range days {
				marker := ""
				if len(schedule.TasksFor(d.repo, day)) > 0 {
					marker = " *"
				}
				fmt.Fprintf(out, "%s %s%s\n", day, day.Weekday(lang), marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Month in YYYY-MM (default: month of the selected date)")
	cmd.Flags().StringVar(&langFlag, "lang", "", "Weekday language (en or es)")

	return cmd
}

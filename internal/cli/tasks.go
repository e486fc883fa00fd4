package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jadual/internal/schedule"
)

func newTasksCommand(ctx context.Context, d deps) *cobra.Command {
	var (
		dateFlag   string
		langFlag   string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show the tasks scheduled on a date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := resolveSelection(d.cfg.Selection, dateFlag, langFlag)
			if err != nil {
				return err
			}
			year, month, _ := schedule.MonthOf(sel.Day)
			board := schedule.BuildBoard(d.repo, sel, year, month)
			d.logger.DebugContext(ctx, "resolved tasks", "day", sel.Day, "lang", sel.Language, "count", len(board.Tasks))

			if outputJSON {
				return printTasksJSON(cmd, board)
			}
			printBoardTasks(cmd, board)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: configured selection)")
	cmd.Flags().StringVar(&langFlag, "lang", "", "Display language (en or es)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit tasks as JSON")

	return cmd
}

func newClockCommand(ctx context.Context, d deps) *cobra.Command {
	var (
		dateFlag string
		langFlag string
	)

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Show the time log for a date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := resolveDay(dateFlag, schedule.DayOf(d.now()))
			if err != nil {
				return err
			}
			lang := resolveLanguage(langFlag, d.cfg.Selection.Language)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, schedule.Text(lang, schedule.MsgClockHeading)+"\n", day)

			tasks := schedule.TasksFor(d.repo, day)
			if len(tasks) == 0 {
				fmt.Fprintln(out, schedule.Text(lang, schedule.MsgNoClockTasks))
				return nil
			}
			for _, task := range tasks {
				line := schedule.ClockEntry(task, lang)
				fmt.Fprintf(out, "%-40s %s\n", line.Title, line.Time)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&langFlag, "lang", "", "Display language (en or es)")

	return cmd
}

func printTasksJSON(cmd *cobra.Command, board schedule.Board) error {
	type dto struct {
		Date     string             `json:"date"`
		Language string             `json:"language"`
		Tasks    []schedule.Display `json:"tasks"`
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto{
		Date:     string(board.Selection.Day),
		Language: string(board.Selection.Language),
		Tasks:    board.Tasks,
	})
}

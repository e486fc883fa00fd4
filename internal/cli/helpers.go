package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jadual/internal/schedule"
)

func resolveDay(dateFlag string, fallback schedule.Day) (schedule.Day, error) {
	if dateFlag == "" {
		return fallback, nil
	}
	day, err := schedule.ParseDay(strings.TrimSpace(dateFlag))
	if err != nil {
		return "", fmt.Errorf("parse date: %w", err)
	}
	return day, nil
}

func resolveMonth(monthFlag string, fallback schedule.Day) (int, int, error) {
	if monthFlag == "" {
		year, month, ok := schedule.MonthOf(fallback)
		if !ok {
			return 0, 0, fmt.Errorf("parse month: %w", schedule.ErrInvalidDay)
		}
		return year, month, nil
	}

	parsed, err := time.Parse("2006-01", strings.TrimSpace(monthFlag))
	if err != nil {
		return 0, 0, fmt.Errorf("parse month %q (expected YYYY-MM): %w", monthFlag, err)
	}
	return parsed.Year(), int(parsed.Month()), nil
}

func resolveLanguage(langFlag string, fallback schedule.Language) schedule.Language {
	if strings.TrimSpace(langFlag) == "" {
		return fallback
	}
	return schedule.NormalizeLanguage(langFlag)
}

func resolveSelection(base schedule.Selection, dateFlag, langFlag string) (schedule.Selection, error) {
	day, err := resolveDay(dateFlag, base.Day)
	if err != nil {
		return schedule.Selection{}, err
	}
	return schedule.Selection{
		Day:      day,
		Language: resolveLanguage(langFlag, base.Language),
	}, nil
}

func formatDisplay(display schedule.Display) string {
	var builder strings.Builder
	builder.Grow(24 + len(display.Title) + len(display.Time))

	builder.WriteString("[")
	builder.WriteString(display.Tier.String())
	builder.WriteString("] ")
	builder.WriteString(display.Time)
	if display.Title != "" {
		builder.WriteString(" ")
		builder.WriteString(display.Title)
	}
	return builder.String()
}

func printBoardTasks(cmd *cobra.Command, board schedule.Board) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", board.Heading, board.Selection.Day)
	if board.Empty() {
		fmt.Fprintln(out, board.Placeholder)
		return
	}

	for i, display := range board.Tasks {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatDisplay(display))
		if display.Description != "" {
			fmt.Fprintf(out, "   %s\n", display.Description)
		}
	}
}

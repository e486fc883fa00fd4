package cli

import (
	"context"
	"strings"
	"testing"
)

func TestDaysCommandListsMonth(t *testing.T) {
	d := newTestDeps(t)

	out := executeCommand(t, newDaysCommand(context.Background(), d), "--month", "2024-12")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 31 {
		t.Fatalf("days lines = %d, want 31\n%s", len(lines), out)
	}
	if lines[0] != "2024-12-01 Sun" {
		t.Fatalf("first line = %q, want %q", lines[0], "2024-12-01 Sun")
	}
	if lines[10] != "2024-12-11 Wed *" {
		t.Fatalf("line for 11th = %q, want marker", lines[10])
	}
	if lines[12] != "2024-12-13 Fri" {
		t.Fatalf("line for 13th = %q, want no marker", lines[12])
	}
}

func TestDaysCommandDefaultsToSelectedMonthInSpanish(t *testing.T) {
	d := newTestDeps(t)

	out := executeCommand(t, newDaysCommand(context.Background(), d), "--lang", "es")
	assertContains(t, out, "2024-12-11 mié *")
	assertContains(t, out, "2024-12-31 mar")
}

func TestDaysCommandLeapFebruary(t *testing.T) {
	d := newTestDeps(t)

	out := executeCommand(t, newDaysCommand(context.Background(), d), "--month", "2024-02")
	if got := strings.Count(out, "\n"); got != 29 {
		t.Fatalf("days lines = %d, want 29", got)
	}
	assertNotContains(t, out, "*")
}

func TestDaysCommandRejectsBadMonth(t *testing.T) {
	d := newTestDeps(t)

	if err := executeCommandErr(t, newDaysCommand(context.Background(), d), "--month", "December"); err == nil {
		t.Fatalf("expected error for bad month")
	}
}

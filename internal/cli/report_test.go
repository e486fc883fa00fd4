package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/faizmokh/jadual/internal/issue"
)

func TestReportCommand(t *testing.T) {
	d := newTestDeps(t)

	image := filepath.Join(t.TempDir(), "spill.png")
	if err := os.WriteFile(image, []byte("png"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := executeCommand(t, newReportCommand(context.Background(), d), "--attach", image, "Spill", "near", "drain")
	assertContains(t, out, "Reporting Issue Successful")
	assertContains(t, out, "id: ")
	assertContains(t, out, "attachment: "+image)
}

func TestReportCommandRejectsBlankText(t *testing.T) {
	d := newTestDeps(t)

	err := executeCommandErr(t, newReportCommand(context.Background(), d), " ")
	if !errors.Is(err, issue.ErrEmptyText) {
		t.Fatalf("error = %v, want ErrEmptyText", err)
	}
}

func TestProfileCommand(t *testing.T) {
	out := executeCommand(t, newProfileCommand())
	assertContains(t, out, "Hello, Sondos!")
	assertContains(t, out, "Email: sondos@example.com")
	assertContains(t, out, "Designation: Field Worker")
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	d := newTestDeps(t)
	root := NewRootCommand(context.Background(), d)

	for _, name := range []string{"days", "tasks", "clock", "report", "profile", "version"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Fatalf("subcommand %q not registered (err=%v)", name, err)
		}
	}

	out := executeCommand(t, root, "version")
	assertContains(t, out, "jadual dev")
}

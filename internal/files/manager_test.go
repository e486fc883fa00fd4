package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSchedulePath(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	want := filepath.Join(tmp, "schedule.json")
	if got := mgr.SchedulePath(); got != want {
		t.Fatalf("SchedulePath() = %q, want %q", got, want)
	}
}

func TestPathKeepsAbsoluteNames(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	abs := filepath.Join(t.TempDir(), "debug.log")
	if got := mgr.Path(abs); got != abs {
		t.Fatalf("Path(%q) = %q, want unchanged", abs, got)
	}
	if got, want := mgr.Path("debug.log"), filepath.Join(tmp, "debug.log"); got != want {
		t.Fatalf("Path(relative) = %q, want %q", got, want)
	}
}

func TestEnsureDirCreatesParents(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	path := mgr.Path(filepath.Join("logs", "2024", "debug.log"))
	got, err := mgr.EnsureDir(path)
	if err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if got != path {
		t.Fatalf("EnsureDir() = %q, want %q", got, path)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("%q is not a directory", filepath.Dir(path))
	}

	// Second call is a no-op.
	if _, err := mgr.EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir second call: %v", err)
	}
}

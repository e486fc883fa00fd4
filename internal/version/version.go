package version

import "fmt"

// Populated at build time via -ldflags "-X github.com/faizmokh/jadual/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version line printed by `jadual version`.
func Info() string {
	return fmt.Sprintf("jadual %s (commit %s, built %s)", Version, Commit, Date)
}

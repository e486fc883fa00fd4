package schedule

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/jadual/internal/files"
)

func newTestLoader(t *testing.T) (*Loader, *files.Manager) {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir())
	require.NoError(t, err)
	return NewLoader(mgr, nil), mgr
}

func TestLoaderFallsBackToSeed(t *testing.T) {
	loader, _ := newTestLoader(t)

	index, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Seed().Days(), index.Days())
}

func TestLoaderReadsScheduleFile(t *testing.T) {
	loader, mgr := newTestLoader(t)

	doc := `{
  "2025-01-06": [
    {"title": {"en": "Calibrate meters", "es": "Calibrar medidores"}, "time": "7:30 AM", "description": {"en": "Bench check."}, "status": "stopped"}
  ]
}`
	require.NoError(t, os.WriteFile(mgr.SchedulePath(), []byte(doc), 0o644))

	index, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Day{"2025-01-06"}, index.Days())

	display := ResolveDisplay(index.Get("2025-01-06")[0], LanguageSpanish)
	assert.Equal(t, "Calibrar medidores", display.Title)
	assert.Empty(t, display.Description)
	assert.Equal(t, TierWarning, display.Tier)
}

func TestLoaderRejectsMalformedFile(t *testing.T) {
	loader, mgr := newTestLoader(t)
	require.NoError(t, os.WriteFile(mgr.SchedulePath(), []byte(`{"tomorrow": []}`), 0o644))

	_, err := loader.Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformedSchedule)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestLoaderRequiresManager(t *testing.T) {
	_, err := NewLoader(nil, nil).Load(context.Background())
	assert.Error(t, err)
}

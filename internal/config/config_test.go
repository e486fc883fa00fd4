package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/jadual/internal/location"
	"github.com/faizmokh/jadual/internal/schedule"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLanguage, EnvDate, EnvLocation, EnvDebugLog} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, schedule.DefaultSelection(), cfg.Selection)
	assert.Nil(t, cfg.Location)
	assert.Empty(t, cfg.DebugLog)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLanguage, "es-MX")
	t.Setenv(EnvDate, "2024-12-17")
	t.Setenv(EnvLocation, "34.0522, -118.2437")
	t.Setenv(EnvDebugLog, "/tmp/jadual.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, schedule.Selection{Day: "2024-12-17", Language: schedule.LanguageSpanish}, cfg.Selection)
	require.NotNil(t, cfg.Location)
	assert.Equal(t, location.Fix{Latitude: 34.0522, Longitude: -118.2437}, *cfg.Location)
	assert.Equal(t, "/tmp/jadual.log", cfg.DebugLog)
}

func TestLoadRejectsBadDate(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDate, "12/12/2024")

	_, err := Load()
	assert.ErrorIs(t, err, schedule.ErrInvalidDay)
}

func TestParseLocation(t *testing.T) {
	for _, input := range []string{"34.05", "a,b", "34.05,", "91,0", "0,181", "1,2,3"} {
		_, err := ParseLocation(input)
		assert.ErrorIsf(t, err, ErrInvalidLocation, "ParseLocation(%q)", input)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Selection.Day = "soon"
	assert.ErrorIs(t, cfg.Validate(), schedule.ErrInvalidDay)

	cfg = Default()
	cfg.Selection.Language = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Location = &location.Fix{Latitude: 120}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLocation)
}

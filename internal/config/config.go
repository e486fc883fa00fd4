package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/faizmokh/jadual/internal/location"
	"github.com/faizmokh/jadual/internal/schedule"
)

// Environment variables read by Load.
const (
	EnvLanguage = "JADUAL_LANG"
	EnvDate     = "JADUAL_DATE"
	EnvLocation = "JADUAL_LOCATION"
	EnvDebugLog = "JADUAL_DEBUG_LOG"
)

// ErrInvalidLocation is returned when JADUAL_LOCATION is not "lat,lon".
var ErrInvalidLocation = errors.New("invalid location")

// Config is the runtime configuration shared by every command.
type Config struct {
	// Selection is the day and language shown first.
	Selection schedule.Selection
	// Location is the fixed position reported to the dashboard, if any.
	Location *location.Fix
	// DebugLog is a file path for debug logs; empty disables them.
	DebugLog string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{Selection: schedule.DefaultSelection()}
}

// Load reads the environment on top of Default and validates the result.
func Load() (Config, error) {
	cfg := Default()

	if value, ok := lookup(EnvLanguage); ok {
		cfg.Selection.Language = schedule.NormalizeLanguage(value)
	}
	if value, ok := lookup(EnvDate); ok {
		day, err := schedule.ParseDay(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDate, err)
		}
		cfg.Selection.Day = day
	}
	if value, ok := lookup(EnvLocation); ok {
		fix, err := ParseLocation(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLocation, err)
		}
		cfg.Location = &fix
	}
	if value, ok := lookup(EnvDebugLog); ok {
		cfg.DebugLog = value
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks invariants that Load cannot express per field.
func (c Config) Validate() error {
	if _, err := schedule.ParseDay(string(c.Selection.Day)); err != nil {
		return fmt.Errorf("selected day: %w", err)
	}
	if c.Selection.Language == "" {
		return errors.New("selected language is empty")
	}
	if c.Location != nil {
		if err := c.Location.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLocation, err)
		}
	}
	return nil
}

// ParseLocation parses "lat,lon" in decimal degrees.
func ParseLocation(value string) (location.Fix, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return location.Fix{}, fmt.Errorf("%w: %q (expected lat,lon)", ErrInvalidLocation, value)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return location.Fix{}, fmt.Errorf("%w: latitude: %w", ErrInvalidLocation, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return location.Fix{}, fmt.Errorf("%w: longitude: %w", ErrInvalidLocation, err)
	}
	fix := location.Fix{Latitude: lat, Longitude: lon}
	if err := fix.Validate(); err != nil {
		return location.Fix{}, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}
	return fix, nil
}

func lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

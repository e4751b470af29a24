package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	PauseMode    string
	Theme        string
	TickInterval time.Duration
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		PauseMode:    PauseModeSuspend,
		Theme:        DefaultTheme,
		TickInterval: TickInterval,
	}
}

// ValidPauseMode reports whether mode is a known pause mode.
func ValidPauseMode(mode string) bool {
	return mode == PauseModeSuspend || mode == PauseModeDisplay
}

// Lookup reads a stored setting. It matches database.Database.GetSetting.
type Lookup func(key string) (string, bool)

// ApplyStored overlays values from the settings table. Unknown pause modes are ignored.
func (s Settings) ApplyStored(get Lookup) Settings {
	if get == nil {
		return s
	}
	if v, ok := get(SettingPauseMode); ok && ValidPauseMode(v) {
		s.PauseMode = v
	}
	if v, ok := get(SettingTheme); ok && strings.TrimSpace(v) != "" {
		s.Theme = v
	}
	return s
}

// ApplyEnv overlays COUNTDOWN_* environment variables.
func (s Settings) ApplyEnv() (Settings, error) {
	return s.applyEnv(os.Getenv)
}

func (s Settings) applyEnv(getenv func(string) string) (Settings, error) {
	if v := strings.TrimSpace(getenv(EnvPauseMode)); v != "" {
		if !ValidPauseMode(v) {
			return s, fmt.Errorf("%s: unknown pause mode %q", EnvPauseMode, v)
		}
		s.PauseMode = v
	}
	if v := strings.TrimSpace(getenv(EnvTheme)); v != "" {
		s.Theme = v
	}
	if v := strings.TrimSpace(getenv(EnvTickMS)); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return s, fmt.Errorf("%s: want a positive integer, got %q", EnvTickMS, v)
		}
		s.TickInterval = time.Duration(ms) * time.Millisecond
	}
	return s, nil
}

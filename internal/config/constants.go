package config

import "time"

// Timer settings.
const (
	// TickInterval is how often the tick source reports the remaining time.
	TickInterval = time.Millisecond

	// MaxDigits is the width of the HHMMSS digit buffer.
	MaxDigits = 6
)

// Pause modes.
const (
	PauseModeSuspend = "suspend"
	PauseModeDisplay = "display"
)

// Database/application settings.
const (
	AppName      = "countdown"
	DBFileName   = "countdown.db"
	LogFileName  = "countdown.log"
	DefaultTheme = "default"
)

// Settings keys persisted in the settings table.
const (
	SettingPauseMode = "pause_mode"
	SettingTheme     = "theme"
)

// Environment overrides.
const (
	EnvPauseMode  = "COUNTDOWN_PAUSE_MODE"
	EnvTheme      = "COUNTDOWN_THEME"
	EnvTickMS     = "COUNTDOWN_TICK_MS"
	EnvDataDir    = "COUNTDOWN_DATA_DIR"
	EnvReportsDir = "COUNTDOWN_REPORTS_DIR"
)

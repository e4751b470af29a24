package util

import (
	"os"
	"path/filepath"
	"strings"
)

// envOverride reads <APP>_<suffix>, e.g. COUNTDOWN_DATA_DIR.
func envOverride(app, suffix string) string {
	key := strings.ToUpper(app) + "_" + suffix
	return expandHome(strings.TrimSpace(os.Getenv(key)))
}

// DataDir is where the database and log file live: <APP>_DATA_DIR when set,
// then $XDG_DATA_HOME/app, then ~/.local/share/app.
func DataDir(app string) string {
	if dir := envOverride(app, "DATA_DIR"); dir != "" {
		return dir
	}
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where history PDFs are written: <APP>_REPORTS_DIR when set,
// otherwise "<app> reports" under the user's documents directory.
func ReportsDir(app string) string {
	if dir := envOverride(app, "REPORTS_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(DocumentsDir(), app+" reports")
}

// DocumentsDir resolves XDG_DOCUMENTS_DIR from the environment or from
// user-dirs.dirs under $XDG_CONFIG_HOME (default ~/.config).
func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	if data, err := os.ReadFile(filepath.Join(configHome, "user-dirs.dirs")); err == nil {
		if dir := lookupUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// lookupUserDir returns the last assignment of key in a user-dirs.dirs file.
// Comments and blank lines are skipped.
func lookupUserDir(data, key string) string {
	value := ""
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, v, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(name) != key {
			continue
		}
		value = strings.Trim(strings.TrimSpace(v), "\"")
	}
	return value
}

// expandHome replaces a leading ~ or any $HOME with the home directory.
func expandHome(path string) string {
	if path == "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return strings.ReplaceAll(path, "$HOME", home)
}

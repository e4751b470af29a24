package util

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogFileAndLogError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "countdown.log")
	closer, err := SetupLogFile(path)
	if err != nil {
		t.Fatalf("SetupLogFile failed: %v", err)
	}
	flags := log.Flags()
	log.SetFlags(0)
	t.Cleanup(func() { log.SetFlags(flags) })

	LogError("store session", errors.New("disk full"))
	LogError("ignored", nil)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "store session: disk full") {
		t.Fatalf("log = %q", got)
	}
	if strings.Contains(got, "ignored") {
		t.Fatalf("nil error should not be logged: %q", got)
	}
}

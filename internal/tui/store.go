package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

// Store is the persistence the TUI needs. *database.Database satisfies it.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	StartSession(ctx context.Context, s models.Session) error
	FinishSession(ctx context.Context, id string, remaining time.Duration, outcome models.Outcome, pauses, resets int, endedAt time.Time) error
	ListSessions(ctx context.Context, limit int) ([]models.Session, error)
	SessionStats(ctx context.Context) (models.SessionStats, error)
}

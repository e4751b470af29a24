package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// SessionRepository defines countdown history operations.
type SessionRepository interface {
	StartSession(ctx context.Context, s models.Session) error
	FinishSession(ctx context.Context, id string, remaining time.Duration, outcome models.Outcome, pauses, resets int, endedAt time.Time) error
	GetSession(ctx context.Context, id string) (models.Session, error)
	ListSessions(ctx context.Context, limit int) ([]models.Session, error)
	SessionStats(ctx context.Context) (models.SessionStats, error)
	ClearSessions(ctx context.Context) (int64, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	SessionRepository
}

var _ Repository = (*Database)(nil)

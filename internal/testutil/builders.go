package testutil

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/google/uuid"
)

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			ID:        uuid.NewString(),
			Duration:  time.Minute,
			Remaining: time.Minute,
			Outcome:   models.OutcomeRunning,
			StartedAt: time.Now().UTC().Truncate(time.Second),
		},
	}
}

func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithDuration sets both the duration and the remaining time.
func (b *SessionBuilder) WithDuration(d time.Duration) *SessionBuilder {
	b.session.Duration = d
	b.session.Remaining = d
	return b
}

func (b *SessionBuilder) WithRemaining(d time.Duration) *SessionBuilder {
	b.session.Remaining = d
	return b
}

func (b *SessionBuilder) WithOutcome(o models.Outcome) *SessionBuilder {
	b.session.Outcome = o
	return b
}

func (b *SessionBuilder) WithPauses(n int) *SessionBuilder {
	b.session.Pauses = n
	return b
}

func (b *SessionBuilder) StartedAt(t time.Time) *SessionBuilder {
	b.session.StartedAt = t
	return b
}

// EndedAt also marks the session finished unless an outcome was already set.
func (b *SessionBuilder) EndedAt(t time.Time) *SessionBuilder {
	b.session.EndedAt = &t
	if !b.session.Outcome.Closed() {
		b.session.Outcome = models.OutcomeFinished
	}
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}

package database

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/testutil"
)

type TestDataBuilder struct {
	t          *testing.T
	ctx        context.Context
	db         *Database
	base       time.Time
	sessionIDs []string
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db, base: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)}
}

// WithSessions inserts closed sessions one minute apart with the given outcomes.
func (b *TestDataBuilder) WithSessions(outcomes ...models.Outcome) *TestDataBuilder {
	b.t.Helper()
	for _, outcome := range outcomes {
		started := b.base.Add(time.Duration(len(b.sessionIDs)) * time.Minute)
		s := testutil.NewSession().
			WithDuration(10 * time.Second).
			StartedAt(started).
			Build()
		if err := b.db.StartSession(b.ctx, s); err != nil {
			b.t.Fatalf("StartSession failed: %v", err)
		}
		remaining := 4 * time.Second
		if outcome == models.OutcomeFinished {
			remaining = 0
		}
		if err := b.db.FinishSession(b.ctx, s.ID, remaining, outcome, 1, 0, started.Add(6*time.Second)); err != nil {
			b.t.Fatalf("FinishSession failed: %v", err)
		}
		b.sessionIDs = append(b.sessionIDs, s.ID)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) SessionIDs() []string {
	return b.sessionIDs
}

package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/google/uuid"
)

// SessionRecorder turns engine events into session history rows.
type SessionRecorder struct {
	ctx       context.Context
	store     Store
	now       func() time.Time
	newID     func() string
	current   *models.Session
	remaining time.Duration
	resets    int
	dirty     bool
}

func NewSessionRecorder(ctx context.Context, store Store, now func() time.Time) *SessionRecorder {
	if now == nil {
		now = time.Now
	}
	return &SessionRecorder{
		ctx:   ctx,
		store: store,
		now:   now,
		newID: uuid.NewString,
	}
}

// Current returns the open session, if any.
func (r *SessionRecorder) Current() *models.Session {
	return r.current
}

// TakeDirty reports whether a session was opened or closed since the last call.
func (r *SessionRecorder) TakeDirty() bool {
	d := r.dirty
	r.dirty = false
	return d
}

// Handle is a timer.Listener.
func (r *SessionRecorder) Handle(ev timer.Event) {
	switch ev.Kind {
	case timer.EventStarted:
		r.close(models.OutcomeStopped, r.remaining)
		r.open(ev.Duration, 0)
	case timer.EventTick:
		r.remaining = ev.Remaining
	case timer.EventPaused:
		r.remaining = ev.Remaining
		if r.current != nil {
			r.current.Pauses++
		}
	case timer.EventReset:
		// A reset after finishing still continues the chain of the finished session.
		r.close(models.OutcomeReset, r.remaining)
		r.open(ev.Duration, r.resets+1)
	case timer.EventFinished:
		r.close(models.OutcomeFinished, 0)
	case timer.EventStopped:
		r.close(models.OutcomeStopped, ev.Remaining)
	}
}

func (r *SessionRecorder) open(d time.Duration, resets int) {
	s := models.Session{
		ID:        r.newID(),
		Duration:  d,
		Remaining: d,
		Outcome:   models.OutcomeRunning,
		Resets:    resets,
		StartedAt: r.now(),
	}
	r.current = &s
	r.remaining = d
	r.resets = resets
	r.dirty = true
	if r.store == nil {
		return
	}
	util.LogError("record session start", r.store.StartSession(r.ctx, s))
}

func (r *SessionRecorder) close(outcome models.Outcome, remaining time.Duration) {
	if r.current == nil {
		return
	}
	s := r.current
	r.current = nil
	r.dirty = true
	if r.store == nil {
		return
	}
	err := r.store.FinishSession(r.ctx, s.ID, remaining, outcome, s.Pauses, s.Resets, r.now())
	util.LogError("record session "+string(outcome), err)
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/golang/mock/gomock"
)

func newTestRecorder(t *testing.T, store Store) (*SessionRecorder, *timer.Machine, *timer.ManualTicker) {
	t.Helper()
	clock := newFakeClock()
	r := NewSessionRecorder(context.Background(), store, clock.Now)
	ids := 0
	r.newID = func() string {
		ids++
		return fmt.Sprintf("session-%d", ids)
	}
	ticker := timer.NewManualTicker(time.Second)
	engine := timer.NewEngine(ticker, timer.PauseSuspend)
	engine.Subscribe(r.Handle)
	return r, timer.NewMachine(engine), ticker
}

func start(t *testing.T, m *timer.Machine, digits string) {
	t.Helper()
	for _, d := range digits {
		m.PressDigit(d)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
}

func TestRecorderFinishedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	r, m, ticker := newTestRecorder(t, store)

	gomock.InOrder(
		store.EXPECT().StartSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				if s.ID != "session-1" || s.Duration != 3*time.Second || s.Outcome != models.OutcomeRunning {
					t.Fatalf("unexpected session start: %+v", s)
				}
				return nil
			}),
		store.EXPECT().FinishSession(gomock.Any(), "session-1", time.Duration(0), models.OutcomeFinished, 0, 0, gomock.Any()).Return(nil),
	)

	start(t, m, "3")
	ticker.Step(10)
	if r.Current() != nil {
		t.Fatalf("expected no open session after finish")
	}
	if !r.TakeDirty() || r.TakeDirty() {
		t.Fatalf("expected dirty flag to be consumed once")
	}
}

func TestRecorderResetOpensNewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	_, m, ticker := newTestRecorder(t, store)

	gomock.InOrder(
		store.EXPECT().StartSession(gomock.Any(), gomock.Any()).Return(nil),
		store.EXPECT().FinishSession(gomock.Any(), "session-1", 8*time.Second, models.OutcomeReset, 1, 0, gomock.Any()).Return(nil),
		store.EXPECT().StartSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				if s.ID != "session-2" || s.Resets != 1 {
					t.Fatalf("unexpected session after reset: %+v", s)
				}
				return nil
			}),
		store.EXPECT().FinishSession(gomock.Any(), "session-2", 10*time.Second, models.OutcomeStopped, 0, 1, gomock.Any()).Return(nil),
	)

	start(t, m, "10")
	ticker.Step(2)
	if _, err := m.TogglePause(); err != nil {
		t.Fatalf("TogglePause failed: %v", err)
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	m.Stop()
	m.Stop()
}

func TestRecorderStoreErrorsAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	r, m, _ := newTestRecorder(t, store)

	store.EXPECT().StartSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	store.EXPECT().FinishSession(gomock.Any(), gomock.Any(), gomock.Any(), models.OutcomeStopped, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	start(t, m, "5")
	if r.Current() == nil {
		t.Fatalf("expected session tracked even when the store fails")
	}
	m.Stop()
	if r.Current() != nil {
		t.Fatalf("expected session closed")
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	r, m, ticker := newTestRecorder(t, nil)
	start(t, m, "2")
	if r.Current() == nil || r.Current().Duration != 2*time.Second {
		t.Fatalf("expected open session without a store, got %+v", r.Current())
	}
	ticker.Step(5)
	if r.Current() != nil {
		t.Fatalf("expected session closed on finish")
	}
}

func TestRecorderResetAfterFinishKeepsResetCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	r, m, ticker := newTestRecorder(t, store)

	gomock.InOrder(
		store.EXPECT().StartSession(gomock.Any(), gomock.Any()).Return(nil),
		store.EXPECT().FinishSession(gomock.Any(), "session-1", 8*time.Second, models.OutcomeReset, 0, 0, gomock.Any()).Return(nil),
		store.EXPECT().StartSession(gomock.Any(), gomock.Any()).Return(nil),
		store.EXPECT().FinishSession(gomock.Any(), "session-2", time.Duration(0), models.OutcomeFinished, 0, 1, gomock.Any()).Return(nil),
		store.EXPECT().StartSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				if s.ID != "session-3" || s.Resets != 2 {
					t.Fatalf("expected reset chain to continue after finish, got %+v", s)
				}
				return nil
			}),
	)

	start(t, m, "10")
	ticker.Step(2)
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	ticker.Step(20)
	if r.Current() != nil {
		t.Fatalf("expected no open session after finish")
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset after finish failed: %v", err)
	}
	if r.Current() == nil || r.Current().Resets != 2 {
		t.Fatalf("expected open session with 2 resets, got %+v", r.Current())
	}
}

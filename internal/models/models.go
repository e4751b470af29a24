package models

import "time"

// Outcome records how a countdown session ended.
type Outcome string

const (
	OutcomeRunning  Outcome = "running"
	OutcomeFinished Outcome = "finished"
	OutcomeStopped  Outcome = "stopped"
	OutcomeReset    Outcome = "reset"
)

// Closed reports whether the session has ended.
func (o Outcome) Closed() bool {
	return o != "" && o != OutcomeRunning
}

// Session is one countdown run from start until it finishes, is stopped or is reset.
type Session struct {
	ID        string
	Duration  time.Duration
	Remaining time.Duration
	Outcome   Outcome
	Pauses    int
	Resets    int
	StartedAt time.Time
	EndedAt   *time.Time
}

// Elapsed is the countdown time consumed by the session.
func (s Session) Elapsed() time.Duration {
	if s.Remaining >= s.Duration {
		return 0
	}
	if s.Remaining < 0 {
		return s.Duration
	}
	return s.Duration - s.Remaining
}

// SessionStats aggregates the session history.
type SessionStats struct {
	Total     int
	Finished  int
	Stopped   int
	Reset     int
	TimeSpent time.Duration
}

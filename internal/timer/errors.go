package timer

import "errors"

var (
	ErrInvalidDigits     = errors.New("duration must be exactly 6 digits")
	ErrStartDisabled     = errors.New("no duration entered")
	ErrInvalidTransition = errors.New("invalid transition")
)

// TransitionError names the action that was rejected and the view it was tried in.
type TransitionError struct {
	Action string
	View   ViewState
}

func (e *TransitionError) Error() string {
	if e == nil {
		return ""
	}
	return e.Action + " not allowed in " + e.View.String() + " view"
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

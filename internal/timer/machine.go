package timer

// ViewState is the screen the machine is on.
type ViewState int

const (
	ViewSetup ViewState = iota
	ViewCountdown
)

func (v ViewState) String() string {
	if v == ViewCountdown {
		return "countdown"
	}
	return "setup"
}

// Machine owns the setup/countdown transitions. Setup carries the digit
// string; Countdown carries the engine's duration and remaining time.
type Machine struct {
	view   ViewState
	digits string
	engine *Engine
}

func NewMachine(engine *Engine) *Machine {
	return &Machine{engine: engine}
}

func (m *Machine) View() ViewState  { return m.view }
func (m *Machine) Digits() string   { return m.digits }
func (m *Machine) Engine() *Engine  { return m.engine }
func (m *Machine) Display() Display { return FormatDisplay(m.digits) }

// StartEnabled reports whether Start would be accepted.
func (m *Machine) StartEnabled() bool {
	return m.view == ViewSetup && IsStartEnabled(m.digits)
}

// PressDigit feeds one keypad digit. It reports whether the digit string changed.
func (m *Machine) PressDigit(d rune) bool {
	if m.view != ViewSetup {
		return false
	}
	next := AppendDigit(m.digits, d)
	changed := next != m.digits
	m.digits = next
	return changed
}

// Backspace deletes the last digit. It reports whether the digit string changed.
func (m *Machine) Backspace() bool {
	if m.view != ViewSetup || m.digits == "" {
		return false
	}
	m.digits = Backspace(m.digits)
	return true
}

// Start parses the padded digit string and enters the countdown view.
func (m *Machine) Start() error {
	if m.view != ViewSetup {
		return &TransitionError{Action: "start", View: m.view}
	}
	if !IsStartEnabled(m.digits) {
		return ErrStartDisabled
	}
	d, err := ParseDuration(Pad(m.digits))
	if err != nil {
		return err
	}
	m.view = ViewCountdown
	m.digits = ""
	m.engine.Start(d)
	return nil
}

// Stop cancels the countdown and returns to an empty setup view.
func (m *Machine) Stop() {
	m.engine.Stop()
	m.view = ViewSetup
	m.digits = ""
}

// TogglePause flips the pause flag of the running countdown.
func (m *Machine) TogglePause() (bool, error) {
	if m.view != ViewCountdown {
		return false, &TransitionError{Action: "pause", View: m.view}
	}
	return m.engine.TogglePause(), nil
}

// Reset restarts the countdown from its full duration.
func (m *Machine) Reset() error {
	if m.view != ViewCountdown {
		return &TransitionError{Action: "reset", View: m.view}
	}
	m.engine.Reset()
	return nil
}

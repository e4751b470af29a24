package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatOutcome returns a human-readable session outcome.
func FormatOutcome(o models.Outcome) string {
	switch o {
	case models.OutcomeFinished:
		return "Finished"
	case models.OutcomeStopped:
		return "Stopped"
	case models.OutcomeReset:
		return "Reset"
	case models.OutcomeRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// FormatSession renders one history line.
func FormatSession(s models.Session) string {
	return fmt.Sprintf("%s  %-8s  %-9s  %s left",
		s.StartedAt.Local().Format("2006-01-02 15:04"),
		FormatDuration(s.Duration),
		FormatOutcome(s.Outcome),
		FormatDuration(s.Remaining))
}

// FormatStats summarizes the history totals.
func FormatStats(s models.SessionStats) string {
	if s.Total == 0 {
		return "No sessions yet"
	}
	return fmt.Sprintf("%d sessions: %d finished, %d stopped, %d reset, %s counted down",
		s.Total, s.Finished, s.Stopped, s.Reset, FormatDuration(s.TimeSpent))
}

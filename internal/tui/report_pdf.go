package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/go-pdf/fpdf"
)

// HistorySource is the read side of the session store.
type HistorySource interface {
	ListSessions(ctx context.Context, limit int) ([]models.Session, error)
	SessionStats(ctx context.Context) (models.SessionStats, error)
}

// GenerateHistoryReport writes every recorded session into a PDF under dir and
// returns the file path.
func GenerateHistoryReport(ctx context.Context, src HistorySource, dir string, now time.Time) (string, error) {
	sessions, err := src.ListSessions(ctx, 0)
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}
	stats, err := src.SessionStats(ctx)
	if err != nil {
		return "", fmt.Errorf("load stats: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Countdown History: %s", now.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(45, 8, "Started", "B", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Duration", "B", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Outcome", "B", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Time left", "B", 0, "", false, 0, "")
	pdf.CellFormat(20, 8, "Pauses", "B", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "No sessions recorded.")
		pdf.Ln(8)
	}
	for _, s := range sessions {
		pdf.CellFormat(45, 7, s.StartedAt.Local().Format("2006-01-02 15:04"), "", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, FormatDuration(s.Duration), "", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, FormatOutcome(s.Outcome), "", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, FormatDuration(s.Remaining), "", 0, "", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", s.Pauses), "", 1, "", false, 0, "")
	}

	// Summary
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, FormatStats(stats))
	pdf.Ln(10)

	filename := filepath.Join(dir, fmt.Sprintf("countdown_history_%s.pdf", now.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return abs, nil
}

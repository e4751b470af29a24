package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func countCells(rows [][]ringCell, kind ringCell) int {
	n := 0
	for _, row := range rows {
		for _, c := range row {
			if c == kind {
				n++
			}
		}
	}
	return n
}

func TestRingCellsShape(t *testing.T) {
	rows := ringCells(7, 0)
	if len(rows) != 15 {
		t.Fatalf("expected 15 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 29 {
			t.Fatalf("row %d: expected 29 columns, got %d", i, len(row))
		}
	}
	if countCells(rows, cellArc) != 0 {
		t.Fatalf("expected no arc at sweep 0")
	}
	if countCells(rows, cellTrack) == 0 {
		t.Fatalf("expected a track")
	}
	if ringCells(0, 90) != nil {
		t.Fatalf("expected nil for zero radius")
	}
}

func TestRingCellsSweep(t *testing.T) {
	const r = 7
	total := countCells(ringCells(r, 0), cellTrack)
	full := ringCells(r, 360)
	if got := countCells(full, cellArc); got != total {
		t.Fatalf("expected full arc of %d cells, got %d", total, got)
	}
	if countCells(full, cellTrack) != 0 {
		t.Fatalf("expected no track at 360")
	}

	// A quarter sweep covers only the top-right quadrant.
	quarter := ringCells(r, 90)
	if quarter[0][2*r] != cellArc {
		t.Fatalf("expected 12 o'clock cell to be arc")
	}
	for y, row := range quarter {
		for x, c := range row {
			if c == cellArc && (x < 2*r || y > r) {
				t.Fatalf("arc cell outside first quadrant at row %d col %d", y, x)
			}
		}
	}
	half := countCells(ringCells(r, 180), cellArc)
	if half <= countCells(quarter, cellArc) || half >= total {
		t.Fatalf("expected arc to grow with sweep, got half=%d total=%d", half, total)
	}
}

func TestRenderRingLabel(t *testing.T) {
	theme := ThemeByName("default")
	out := renderRing(theme, 7, 45, "01 : 30 : 05")
	lines := strings.Split(out, "\n")
	if len(lines) != 15 {
		t.Fatalf("expected 15 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[7], "01 : 30 : 05") {
		t.Fatalf("expected label on the center row, got %q", lines[7])
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 29 {
			t.Fatalf("line %d: expected width 29, got %d", i, w)
		}
	}

	if !strings.Contains(lines[6], ringCaption) {
		t.Fatalf("expected caption above the label, got %q", lines[6])
	}

	long := strings.Repeat("9", 40)
	if strings.Contains(renderRing(theme, 7, 0, long), long) {
		t.Fatalf("expected oversized label to be left out")
	}
}

func TestRenderCellsBatchesRuns(t *testing.T) {
	theme := ThemeByName("default")
	got := renderCells(theme, []ringCell{cellEmpty, cellArc, cellArc, cellTrack, cellEmpty})
	want := " " + theme.Arc.Render(arcGlyph+arcGlyph) + theme.Track.Render(trackGlyph) + " "
	if got != want {
		t.Fatalf("renderCells = %q, want %q", got, want)
	}
}

func TestRenderRingCaptionNeedsRoom(t *testing.T) {
	theme := ThemeByName("default")
	// A radius-1 ring has no interior on the row above its center.
	out := renderRing(theme, 1, 0, "5")
	if strings.Contains(out, ringCaption) {
		t.Fatalf("expected caption left out of a tiny ring:\n%s", out)
	}
}

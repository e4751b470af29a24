package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type ringCell int

const (
	cellEmpty ringCell = iota
	cellTrack
	cellArc
)

const (
	arcGlyph   = "●"
	trackGlyph = "·"
)

// ringCells rasterizes a ring of the given radius. Terminal cells are about
// twice as tall as wide, so each row spans 4*radius+1 columns. The arc starts
// at 12 o'clock and runs clockwise for sweep degrees.
func ringCells(radius int, sweep float64) [][]ringCell {
	if radius <= 0 {
		return nil
	}
	r := float64(radius)
	rows := make([][]ringCell, 0, 2*radius+1)
	for y := -radius; y <= radius; y++ {
		row := make([]ringCell, 0, 4*radius+1)
		for x := -2 * radius; x <= 2*radius; x++ {
			fx, fy := float64(x)/2, float64(y)
			if math.Abs(math.Hypot(fx, fy)-r) >= 0.5 {
				row = append(row, cellEmpty)
				continue
			}
			angle := math.Atan2(fx, -fy) * 180 / math.Pi
			if angle < 0 {
				angle += 360
			}
			if angle < sweep {
				row = append(row, cellArc)
			} else {
				row = append(row, cellTrack)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

const ringCaption = "time"

// renderRing draws the ring with label centered in its middle row and a
// caption on the row above. Text that does not fit inside the ring is left out.
func renderRing(theme Theme, radius int, sweep float64, label string) string {
	cells := ringCells(radius, sweep)
	if len(cells) == 0 {
		return theme.Label.Render(label)
	}
	lines := make([]string, 0, len(cells))
	for i, row := range cells {
		switch {
		case i == radius:
			lines = append(lines, renderTextRow(theme, row, label, theme.Label))
		case i == radius-1:
			lines = append(lines, renderTextRow(theme, row, ringCaption, theme.Dim))
		default:
			lines = append(lines, renderCells(theme, row))
		}
	}
	return strings.Join(lines, "\n")
}

func renderTextRow(theme Theme, row []ringCell, text string, style lipgloss.Style) string {
	inner := 0
	for _, c := range row[len(row)/2:] {
		if c != cellEmpty {
			break
		}
		inner++
	}
	// inner counts the empty cells from the center outward, center included.
	free := 2*inner - 1
	w := ansi.StringWidth(text)
	if w == 0 || w > free {
		return renderCells(theme, row)
	}
	start := len(row)/2 - w/2
	return renderCells(theme, row[:start]) + style.Render(text) + renderCells(theme, row[start+w:])
}

// renderCells styles runs of equal cells in one Render call each.
func renderCells(theme Theme, row []ringCell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j] == row[i] {
			j++
		}
		n := j - i
		switch row[i] {
		case cellArc:
			b.WriteString(theme.Arc.Render(strings.Repeat(arcGlyph, n)))
		case cellTrack:
			b.WriteString(theme.Track.Render(strings.Repeat(trackGlyph, n)))
		default:
			b.WriteString(strings.Repeat(" ", n))
		}
		i = j
	}
	return b.String()
}

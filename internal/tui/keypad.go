package tui

import "github.com/akyairhashvil/countdown/internal/timer"

// keypadGrid lays out the setup keypad. -1 marks an empty slot.
var keypadGrid = [][]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{-1, 9, -1},
	{-1, 10, -1},
}

// keypadLabels maps grid cells to the key they represent.
var keypadLabels = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "Start"}

const startCell = 10

type keypadCursor struct {
	row, col int
}

func (c keypadCursor) cell() int {
	return keypadGrid[c.row][c.col]
}

func (c keypadCursor) move(dRow, dCol int) keypadCursor {
	if dRow != 0 {
		row := c.row + dRow
		if row < 0 || row >= len(keypadGrid) {
			return c
		}
		col := c.col
		if keypadGrid[row][col] < 0 {
			col = 1
		}
		return keypadCursor{row: row, col: col}
	}
	for col := c.col + dCol; col >= 0 && col < len(keypadGrid[c.row]); col += dCol {
		if keypadGrid[c.row][col] >= 0 {
			return keypadCursor{row: c.row, col: col}
		}
	}
	return c
}

// activate presses the key under the cursor.
func (c keypadCursor) activate(machine *timer.Machine) error {
	cell := c.cell()
	if cell == startCell {
		return machine.Start()
	}
	machine.PressDigit(rune(keypadLabels[cell][0]))
	return nil
}

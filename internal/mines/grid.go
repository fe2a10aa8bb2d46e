package mines

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	UnflaggedMine    CellState = 67
	/*
	 * Each item of a [Grid] is one of the following values:
	 *
	 * 	- 0 to 8 mean the cell is open and has a surrounding mine count.
	 *
	 * 	- -1 means the cell is flagged.
	 *
	 * 	- -2 means the cell is closed.
	 *
	 * 	- 64 means a flagged mine, shown once the board is revealed.
	 *
	 * 	- 65 means the mine has been opened.
	 *
	 * 	- 67 means a mine nobody flagged, shown once the board is revealed.
	 */
)

func (s CellState) Mine() bool {
	return s == CorrectlyFlagged || s == ExplodedMine || s == UnflaggedMine
}

// Count is the adjacent mine count of an open cell, or -1.
func (s CellState) Count() int {
	if 0 <= s && s <= 8 {
		return int(s)
	}
	return -1
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == Flagged:
		return "F"
	case s == 0:
		return " "
	case s.Count() > 0:
		return strconv.Itoa(s.Count())
	case s.Mine():
		return "X"
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			b.WriteString(g[y*width+x].String())
		}
		if y < len(g)/width-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Snapshot is a copy of what a player may see of a board. Changing it has no
// effect on the game it was taken from.
type Snapshot struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Grid   Grid `json:"grid"`
}

func (s Snapshot) At(x, y int) CellState {
	return s.Grid[y*s.Width+x]
}

func (s Snapshot) String() string {
	return s.Grid.ToString(s.Width)
}

func (b *Board) snapshot(reveal bool) Snapshot {
	grid := make(Grid, len(b.cells))
	for i, c := range b.cells {
		switch {
		case c.Open && c.Mine:
			grid[i] = ExplodedMine
		case c.Open:
			grid[i] = CellState(c.AdjacentMines)
		case reveal && c.Mine && c.Flagged:
			grid[i] = CorrectlyFlagged
		case reveal && c.Mine:
			grid[i] = UnflaggedMine
		case reveal:
			grid[i] = CellState(c.AdjacentMines)
		case c.Flagged:
			grid[i] = Flagged
		default:
			grid[i] = Unknown
		}
	}
	return Snapshot{Width: b.width, Height: b.height, Grid: grid}
}

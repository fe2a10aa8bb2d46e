package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Result int8

const (
	Playing Result = iota
	Won
	Lost
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// [Result] implements [encoding.TextMarshaler]
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Game owns a board and applies player actions to it. Every action either
// changes the game and reports true, or leaves it untouched and reports
// false.
type Game struct {
	board     *Board
	openCells int
	flags     int
	detonated bool
	todo      *celltodo
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(params.Width, params.Height, params.MineCount())
	if err != nil {
		return nil, err
	}
	if err := board.PlaceMines(r); err != nil {
		return nil, err
	}
	return NewGameFromBoard(board)
}

// NewGameFromBoard takes ownership of a board whose mines are already laid.
func NewGameFromBoard(b *Board) (*Game, error) {
	if !b.placed {
		return nil, ErrMinesNotPlaced
	}
	g := &Game{
		board: b,
		todo:  newCelltodo(len(b.cells)),
	}
	for _, c := range b.cells {
		if c.Open {
			g.openCells++
		}
		if c.Flagged {
			g.flags++
		}
	}
	return g, nil
}

func (g *Game) Width() int     { return g.board.width }
func (g *Game) Height() int    { return g.board.height }
func (g *Game) MineCount() int { return g.board.mineCount }
func (g *Game) OpenCells() int { return g.openCells }
func (g *Game) Flags() int     { return g.flags }

// MinesLeft is the mine count minus the flags placed; it goes negative when
// the player over-flags.
func (g *Game) MinesLeft() int {
	return g.board.mineCount - g.flags
}

func (g *Game) IsOver() bool {
	b := g.board
	return g.detonated || b.width*b.height-g.openCells == b.mineCount
}

func (g *Game) Result() Result {
	switch {
	case !g.IsOver():
		return Playing
	case g.detonated:
		return Lost
	default:
		return Won
	}
}

func (g *Game) Snapshot() Snapshot {
	return g.board.snapshot(false)
}

// Reveal shows every cell, mines included.
func (g *Game) Reveal() Snapshot {
	return g.board.snapshot(true)
}

func (g *Game) Submit(action Action, x, y int) bool {
	switch action {
	case Flag:
		return g.ToggleFlag(x, y)
	case Open:
		return g.Open(x, y)
	case Force:
		return g.ForceOpen(x, y)
	default:
		return false
	}
}

// actionable returns the index of (x, y) if the game still accepts actions
// and the point is on the board.
func (g *Game) actionable(x, y int) (int, bool) {
	if g.IsOver() || !g.board.InBounds(x, y) {
		return -1, false
	}
	return g.board.index(x, y), true
}

func (g *Game) ToggleFlag(x, y int) bool {
	i, ok := g.actionable(x, y)
	if !ok {
		return false
	}
	c := &g.board.cells[i]
	if c.Open {
		return false
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		g.flags++
	} else {
		g.flags--
	}
	return true
}

func (g *Game) Open(x, y int) bool {
	i, ok := g.actionable(x, y)
	if !ok {
		return false
	}
	c := &g.board.cells[i]
	if c.Open || c.Flagged {
		return false
	}
	g.open(i)
	if c.Mine {
		g.detonated = true
	} else if c.AdjacentMines == 0 {
		g.openArea(i)
	}
	g.logIfOver(x, y)
	return true
}

// ForceOpen opens the closed neighbours of an open cell whose flag count
// matches its mine count.
func (g *Game) ForceOpen(x, y int) bool {
	i, ok := g.actionable(x, y)
	if !ok {
		return false
	}
	c := &g.board.cells[i]
	if !c.Open || c.Flagged {
		return false
	}
	if g.board.flaggedAround(i) != c.AdjacentMines {
		return false
	}
	if c.Mine {
		g.detonated = true
	} else {
		g.openArea(i)
	}
	g.logIfOver(x, y)
	return true
}

func (g *Game) open(i int) {
	g.board.cells[i].Open = true
	g.openCells++
}

// openArea opens everything around origin, then keeps expanding from every
// opened non-mine cell whose flag count already satisfies its mine count.
// Mines bordering the area get opened but are never expanded from.
func (g *Game) openArea(origin int) {
	b := g.board
	opened := 0

	g.todo.add(origin)
	for i, ok := g.todo.pop(); ok; i, ok = g.todo.pop() {
		for j := range b.neighbours(i) {
			n := &b.cells[j]
			if n.Open || n.Flagged {
				continue
			}
			if !n.Mine && n.AdjacentMines == b.flaggedAround(j) {
				g.todo.add(j)
			}
			g.open(j)
			opened++
		}
	}

	p := b.point(origin)
	Log.WithFields(logrus.Fields{
		"x":      p.X,
		"y":      p.Y,
		"opened": opened,
	}).Debug("opened area")
}

func (g *Game) logIfOver(x, y int) {
	if !g.IsOver() {
		return
	}
	Log.WithFields(logrus.Fields{
		"x":      x,
		"y":      y,
		"result": g.Result(),
		"open":   g.openCells,
		"flags":  g.flags,
	}).Debug("game over")
}

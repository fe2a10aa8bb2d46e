package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type Point struct {
	X, Y int
}

type Cell struct {
	Mine, Open, Flagged bool
	AdjacentMines       int
}

// Board is a row-major grid of cells. Cells are never handed out by
// reference; use [Board.Cell] for a copy.
type Board struct {
	width, height, mineCount int
	cells                    []Cell
	placed                   bool
}

func NewBoard(width, height, mineCount int) (*Board, error) {
	if width < 1 || height < 1 || mineCount < 0 || mineCount > width*height {
		return nil, InvalidBoardError{width, height, mineCount}
	}
	b := &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     make([]Cell, width*height),
	}
	return b, nil
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }
func (b *Board) Placed() bool   { return b.placed }

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) point(i int) Point {
	return Point{i % b.width, i / b.width}
}

func (b *Board) Cell(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[b.index(x, y)], true
}

// neighbours yields the indices of the cells around i, scanning dy then dx
// from -1 to 1 and skipping anything off the grid.
func (b *Board) neighbours(i int) iter.Seq[int] {
	x, y := i%b.width, i/b.width
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if b.InBounds(xx, yy) && !yield(b.index(xx, yy)) {
					return
				}
			}
		}
	}
}

func (b *Board) Neighbours(x, y int) []Point {
	if !b.InBounds(x, y) {
		return nil
	}
	points := make([]Point, 0, 8)
	for j := range b.neighbours(b.index(x, y)) {
		points = append(points, b.point(j))
	}
	return points
}

func (b *Board) flaggedAround(i int) int {
	n := 0
	for j := range b.neighbours(i) {
		if b.cells[j].Flagged {
			n++
		}
	}
	return n
}

// PlaceMines picks mineCount distinct cells uniformly at random.
func (b *Board) PlaceMines(r *rand.Rand) error {
	if b.placed {
		return ErrMinesPlaced
	}

	candidates := make([]int, len(b.cells))
	for i := range candidates {
		candidates[i] = i
	}

	/*
	 * Pick n off the list at random, moving the last remaining candidate
	 * into the slot that was just taken.
	 */
	mines := make([]int, 0, b.mineCount)
	k := len(candidates)
	for range b.mineCount {
		i := r.IntN(k)
		mines = append(mines, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	b.layMines(mines)
	return nil
}

// PlaceMinesAt lays mines on exactly the given points; the board's mine count
// becomes len(points).
func (b *Board) PlaceMinesAt(points ...Point) error {
	if b.placed {
		return ErrMinesPlaced
	}
	seen := make(map[int]bool, len(points))
	mines := make([]int, 0, len(points))
	for _, p := range points {
		if !b.InBounds(p.X, p.Y) {
			return fmt.Errorf("mine at (%d, %d) is out of bounds", p.X, p.Y)
		}
		i := b.index(p.X, p.Y)
		if seen[i] {
			return fmt.Errorf("duplicate mine at (%d, %d)", p.X, p.Y)
		}
		seen[i] = true
		mines = append(mines, i)
	}
	b.mineCount = len(mines)
	b.layMines(mines)
	return nil
}

func (b *Board) layMines(mines []int) {
	for _, i := range mines {
		b.cells[i].Mine = true
		for j := range b.neighbours(i) {
			b.cells[j].AdjacentMines++
		}
	}
	b.placed = true

	Log.WithFields(logrus.Fields{
		"width":  b.width,
		"height": b.height,
		"mines":  len(mines),
	}).Debug("mines placed")
}

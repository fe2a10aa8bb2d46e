package mines

import (
	"errors"
	"fmt"
)

var (
	ErrMinesPlaced    = errors.New("mines already placed")
	ErrMinesNotPlaced = errors.New("mines not placed")
)

type InvalidBoardError struct {
	Width, Height, MineCount int
}

// [InvalidBoardError] implements [error]
func (e InvalidBoardError) Error() string {
	switch {
	case e.Width < 1:
		return fmt.Sprintf("cannot create a board with width %d", e.Width)
	case e.Height < 1:
		return fmt.Sprintf("cannot create a board with height %d", e.Height)
	case e.MineCount < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.MineCount)
	default:
		return fmt.Sprintf(
			"not enough space for %d mines on a %dx%d board",
			e.MineCount, e.Width, e.Height,
		)
	}
}

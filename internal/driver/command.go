package driver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrQuit = errors.New("quit")

type Command struct {
	Action mines.Action
	X, Y   int
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d %d", c.Action, c.X, c.Y)
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// ParseCommand reads "action x y". Bounds are left to the game; "quit" and
// "q" return [ErrQuit].
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, errors.New("empty command")
	}
	switch strings.ToLower(parts[0]) {
	case "quit", "q", "exit":
		return Command{}, ErrQuit
	}

	action, err := mines.ParseAction(parts[0])
	if err != nil {
		return Command{}, err
	}
	if len(parts) != 3 {
		return Command{}, errors.New("invalid number of arguments")
	}
	x, y, err := parseXY(parts[1:])
	if err != nil {
		return Command{}, err
	}
	return Command{Action: action, X: x, Y: y}, nil
}

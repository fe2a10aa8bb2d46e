package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// mine density for each difficulty, in percent of the cell count
var hardness = [...]int{10, 20, 40}

var difficultyNames = [...]string{"easy", "medium", "hard"}

func (d Difficulty) Valid() bool {
	return 0 <= d && int(d) < len(hardness)
}

func (d Difficulty) Percent() int {
	return hardness[d]
}

func (d Difficulty) String() string {
	if !d.Valid() {
		return "Difficulty(" + strconv.Itoa(int(d)) + ")"
	}
	return difficultyNames[d]
}

// ParseDifficulty accepts either the level number or its name.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if s == name {
			return Difficulty(i), nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Difficulty(n).Valid() {
		return 0, fmt.Errorf(
			"invalid difficulty %q: must be 0-%d or one of %s",
			s, len(hardness)-1, strings.Join(difficultyNames[:], ", "),
		)
	}
	return Difficulty(n), nil
}

type GameParams struct {
	Width, Height int
	Level         Difficulty
}

// MineCount is floor(percent * width * height / 100).
func (p GameParams) MineCount() int {
	return p.Level.Percent() * p.Width * p.Height / 100
}

func (p GameParams) Validate() error {
	if !p.Level.Valid() {
		return fmt.Errorf("invalid difficulty level %d", int(p.Level))
	}
	if p.Width < 1 || p.Height < 1 {
		return InvalidBoardError{Width: p.Width, Height: p.Height}
	}
	return nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%s)", p.Width, p.Height, p.Level)
}

package mines

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
		ok    bool
	}{
		{"0", Easy, true},
		{"1", Medium, true},
		{"2", Hard, true},
		{"easy", Easy, true},
		{" Hard ", Hard, true},
		{"medium", Medium, true},
		{"3", 0, false},
		{"-1", 0, false},
		{"insane", 0, false},
		{"", 0, false},
	}
	for _, test := range tests {
		d, err := ParseDifficulty(test.input)
		if !test.ok {
			assert.Error(t, err, "input %q", test.input)
			continue
		}
		if assert.NoError(t, err, "input %q", test.input) {
			assert.Equal(t, test.want, d)
		}
	}
}

func TestMineCount(t *testing.T) {
	tests := []struct {
		params GameParams
		want   int
	}{
		{GameParams{10, 10, Easy}, 10},
		{GameParams{10, 10, Medium}, 20},
		{GameParams{10, 10, Hard}, 40},
		{GameParams{3, 3, Easy}, 0},
		{GameParams{3, 3, Hard}, 3},
		{GameParams{1, 2, Hard}, 0},
		{GameParams{7, 3, Medium}, 4},
		{GameParams{30, 16, Hard}, 192},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.params.MineCount(), test.params.String())
	}
}

func TestGameParamsValidate(t *testing.T) {
	assert.NoError(t, GameParams{1, 1, Easy}.Validate())
	assert.Error(t, GameParams{0, 5, Easy}.Validate())
	assert.Error(t, GameParams{5, 0, Easy}.Validate())
	assert.Error(t, GameParams{5, 5, Difficulty(3)}.Validate())
}

func TestGenAll(t *testing.T) {
	t.Parallel()

	sizes := []struct{ w, h int }{
		{1, 1}, {1, 2}, {3, 3}, {9, 9}, {16, 16}, {30, 16}, {1, 40},
	}

	for _, size := range sizes {
		for level := Easy; level <= Hard; level++ {
			params := GameParams{size.w, size.h, level}
			t.Run(params.String(), func(t *testing.T) {
				t.Parallel()
				r := rand.New(rand.NewPCG(1, 2))
				for range 20 {
					game, err := NewGame(params, r)
					require.NoError(t, err)
					b := game.board

					mines := 0
					for _, c := range b.cells {
						if c.Mine {
							mines++
						}
					}
					assert.Equal(t, params.MineCount(), b.mineCount)
					assert.Equal(t, params.MineCount(), mines)
					assertCounts(t, b)
				}
			})
		}
	}
}

func TestPlaceMinesUniform(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	// every cell of a 4x4 board should host a mine about 1/4 of the time
	const rounds = 4000
	r := rand.New(rand.NewPCG(7, 11))
	hits := make([]int, 16)
	for range rounds {
		b, err := NewBoard(4, 4, 4)
		require.NoError(t, err)
		require.NoError(t, b.PlaceMines(r))
		for i, c := range b.cells {
			if c.Mine {
				hits[i]++
			}
		}
	}
	for i, h := range hits {
		assert.InDelta(t, rounds/4, h, rounds/20, fmt.Sprintf("cell %d", i))
	}
}

func TestNewGameRejectsBadParams(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	_, err := NewGame(GameParams{0, 3, Easy}, r)
	var boardErr InvalidBoardError
	assert.ErrorAs(t, err, &boardErr)

	_, err = NewGame(GameParams{3, 3, Difficulty(9)}, r)
	assert.Error(t, err)
}

// assertCounts checks every adjacent mine count against a brute force count.
func assertCounts(t *testing.T, b *Board) {
	t.Helper()
	for y := range b.height {
		for x := range b.width {
			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					xx, yy := x+dx, y+dy
					if (dx != 0 || dy != 0) &&
						xx >= 0 && xx < b.width && yy >= 0 && yy < b.height &&
						b.cells[yy*b.width+xx].Mine {
						want++
					}
				}
			}
			c, _ := b.Cell(x, y)
			assert.Equal(t, want, c.AdjacentMines, "cell (%d, %d)", x, y)
		}
	}
}

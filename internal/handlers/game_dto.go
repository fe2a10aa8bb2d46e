package handlers

import (
	"fmt"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

// MaxSide bounds either board dimension requested over the wire.
const MaxSide = 500

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewGameDTO struct {
	Width  int    `schema:"width"`
	Height int    `schema:"height"`
	Level  string `schema:"level"`
}

// ParseNewGameDTO decodes the query of a /play request. Keys that are absent
// keep the values from defaults.
func ParseNewGameDTO(
	src map[string][]string, defaults mines.GameParams,
) (mines.GameParams, error) {
	dto := NewGameDTO{
		Width:  defaults.Width,
		Height: defaults.Height,
		Level:  defaults.Level.String(),
	}
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.GameParams{}, err
	}
	if dto.Width > MaxSide || dto.Height > MaxSide {
		return mines.GameParams{}, fmt.Errorf(
			"board must be at most %dx%d, got %dx%d",
			MaxSide, MaxSide, dto.Width, dto.Height,
		)
	}
	level, err := mines.ParseDifficulty(dto.Level)
	if err != nil {
		return mines.GameParams{}, err
	}
	params := mines.GameParams{
		Width:  dto.Width,
		Height: dto.Height,
		Level:  level,
	}
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}

type GameStateDTO struct {
	ID        string         `json:"id"`
	Board     mines.Snapshot `json:"board"`
	Over      bool           `json:"over"`
	Result    mines.Result   `json:"result"`
	MinesLeft int            `json:"mines_left"`
	Error     string         `json:"error,omitempty"`
}

func NewGameStateDTO(id string, g *mines.Game, board mines.Snapshot) GameStateDTO {
	return GameStateDTO{
		ID:        id,
		Board:     board,
		Over:      g.IsOver(),
		Result:    g.Result(),
		MinesLeft: g.MinesLeft(),
	}
}

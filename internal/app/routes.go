package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/minesweeper/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() error {
	defaults, err := a.config.GameParams()
	if err != nil {
		return err
	}

	game := handlers.NewGameHandler(
		a.log, defaults, a.config.Upgrader(), createRand,
	)

	a.router.HandleFunc("GET /play", game.Play)
	a.router.HandleFunc("GET /healthz", game.Health)
	return nil
}

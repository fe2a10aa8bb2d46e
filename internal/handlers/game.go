package handlers

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/driver"
	"github.com/vancomm/minesweeper/internal/mines"
)

type GameHandler struct {
	log      logrus.FieldLogger
	defaults mines.GameParams
	upgrader websocket.Upgrader
	newRand  func() *rand.Rand
}

// NewGameHandler serves one game per websocket connection. newRand is called
// once per game; the returned source is never shared between connections.
func NewGameHandler(
	log logrus.FieldLogger,
	defaults mines.GameParams,
	upgrader websocket.Upgrader,
	newRand func() *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:      log,
		defaults: defaults,
		upgrader: upgrader,
		newRand:  newRand,
	}
}

func (g GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	params, err := ParseNewGameDTO(r.URL.Query(), g.defaults)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	game, err := mines.NewGame(params, g.newRand())
	if err != nil {
		g.log.WithError(err).Error("unable to generate a new game")
		sendErrorOrLog(w, g.log, http.StatusInternalServerError, err)
		return
	}

	id := uuid.NewString()
	log := g.log.WithFields(logrus.Fields{
		"game":   id,
		"params": params.String(),
	})

	conn, err := g.upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		log.WithError(err).Warn("unable to upgrade connection")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(MaxFrameSize)

	// unblocks the pending read once the server shuts down
	stop := context.AfterFunc(r.Context(), func() { conn.Close() })
	defer stop()

	log.Debug("established ws connection")

	session := newSession(id, conn, game)
	err = driver.New(game, session, session, log).Run(r.Context())
	switch {
	case err == nil:
	case r.Context().Err() != nil:
		log.Debug("connection closed by server")
	case errors.Is(err, driver.ErrQuit):
		log.Debug("player quit")
		session.close(websocket.CloseNormalClosure, "quit")
	case websocket.IsCloseError(err,
		websocket.CloseNormalClosure, websocket.CloseGoingAway,
	):
		log.Debug("player left")
	default:
		log.WithError(err).Warn("error in ws loop")
	}
}

func (g GameHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		g.log.WithError(err).Error("unable to send response")
	}
}

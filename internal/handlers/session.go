package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vancomm/minesweeper/internal/driver"
	"github.com/vancomm/minesweeper/internal/mines"
)

const writeWait = time.Second

// MaxFrameSize caps one client frame; larger frames close the connection.
const MaxFrameSize = 4096

var errBinaryMessage = errors.New("binary messages are not supported")

// wsSession is both the presenter and the input source of one websocket game.
// Every line of a text frame is one command.
type wsSession struct {
	id    string
	conn  *websocket.Conn
	game  *mines.Game
	lines []string
	err   error
}

func newSession(id string, conn *websocket.Conn, game *mines.Game) *wsSession {
	return &wsSession{id: id, conn: conn, game: game}
}

// send remembers the first write error; NextCommand reports it.
func (s *wsSession) send(board mines.Snapshot, message string) {
	if s.err != nil {
		return
	}
	state := NewGameStateDTO(s.id, s.game, board)
	state.Error = message
	if err := s.conn.WriteJSON(state); err != nil {
		s.err = fmt.Errorf("unable to write json: %w", err)
	}
}

func (s *wsSession) ShowBoard(board mines.Snapshot) {
	s.send(board, "")
}

func (s *wsSession) Rejected(cmd driver.Command) {
	s.send(s.game.Snapshot(), fmt.Sprintf(
		"cannot %s at (%d, %d)", cmd.Action, cmd.X, cmd.Y,
	))
}

func (s *wsSession) ShowResult(result mines.Result) {
	s.close(websocket.CloseNormalClosure, result.String())
}

func (s *wsSession) close(code int, text string) {
	if s.err != nil {
		return
	}
	msg := websocket.FormatCloseMessage(code, text)
	if err := s.conn.WriteControl(
		websocket.CloseMessage, msg, time.Now().Add(writeWait),
	); err != nil {
		s.err = fmt.Errorf("unable to close: %w", err)
	}
}

func (s *wsSession) NextCommand(ctx context.Context) (driver.Command, error) {
	for {
		if s.err != nil {
			return driver.Command{}, s.err
		}
		if err := ctx.Err(); err != nil {
			return driver.Command{}, err
		}

		if len(s.lines) == 0 {
			mt, buf, err := s.conn.ReadMessage()
			if err != nil {
				return driver.Command{}, err
			}
			if mt != websocket.TextMessage {
				return driver.Command{}, errBinaryMessage
			}
			s.lines = strings.Split(strings.TrimSpace(string(buf)), "\n")
		}

		line := s.lines[0]
		s.lines = s.lines[1:]

		cmd, err := driver.ParseCommand(line)
		if errors.Is(err, driver.ErrQuit) {
			return driver.Command{}, err
		}
		if err != nil {
			s.send(s.game.Snapshot(), err.Error())
			continue
		}
		return cmd, nil
	}
}

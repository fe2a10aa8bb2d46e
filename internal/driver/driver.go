package driver

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Presenter shows the game to a player.
type Presenter interface {
	ShowBoard(board mines.Snapshot)
	ShowResult(result mines.Result)
	Rejected(cmd Command)
}

// InputSource blocks until the player issues the next well-formed command.
type InputSource interface {
	NextCommand(ctx context.Context) (Command, error)
}

type Driver struct {
	game *mines.Game
	ui   Presenter
	in   InputSource
	log  logrus.FieldLogger
}

func New(game *mines.Game, ui Presenter, in InputSource, log logrus.FieldLogger) *Driver {
	return &Driver{game: game, ui: ui, in: in, log: log}
}

// Run plays the game to its end. It returns nil once the game is over, or the
// error that stopped the input source ([ErrQuit] included).
func (d *Driver) Run(ctx context.Context) error {
	for !d.game.IsOver() {
		d.ui.ShowBoard(d.game.Snapshot())
		if err := d.turn(ctx); err != nil {
			return err
		}
	}

	d.log.WithFields(logrus.Fields{
		"result": d.game.Result(),
		"open":   d.game.OpenCells(),
		"flags":  d.game.Flags(),
	}).Info("game finished")

	d.ui.ShowBoard(d.game.Reveal())
	d.ui.ShowResult(d.game.Result())
	return nil
}

// turn asks for commands until one is accepted.
func (d *Driver) turn(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd, err := d.in.NextCommand(ctx)
		if err != nil {
			return err
		}
		if d.game.Submit(cmd.Action, cmd.X, cmd.Y) {
			d.log.WithField("command", cmd.String()).Debug("accepted")
			return nil
		}
		d.log.WithField("command", cmd.String()).Debug("rejected")
		d.ui.Rejected(cmd)
	}
}

package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/vancomm/minesweeper/internal/driver"
	"github.com/vancomm/minesweeper/internal/mines"
)

const prompt = "Your turn. Input action x y: "

// UI plays a game over a pair of text streams, one command per line.
type UI struct {
	in    *bufio.Scanner
	out   io.Writer
	lines chan string
	err   error // set before lines is closed
	once  sync.Once
}

func New(in io.Reader, out io.Writer) *UI {
	return &UI{
		in:    bufio.NewScanner(in),
		out:   out,
		lines: make(chan string),
	}
}

// scan feeds lines to NextCommand so that a blocked read never holds up a
// cancelled context.
func (ui *UI) scan() {
	defer close(ui.lines)
	for ui.in.Scan() {
		ui.lines <- ui.in.Text()
	}
	ui.err = ui.in.Err()
	if ui.err == nil {
		ui.err = io.EOF
	}
}

func (ui *UI) ShowBoard(board mines.Snapshot) {
	fmt.Fprintln(ui.out, board.String())
}

func (ui *UI) ShowResult(result mines.Result) {
	if result == mines.Won {
		fmt.Fprintln(ui.out, "Congratulations! You've won!")
	} else {
		fmt.Fprintln(ui.out, "You lost. Better luck next time!")
	}
}

func (ui *UI) Rejected(cmd driver.Command) {
	fmt.Fprintf(ui.out, "Cannot %s at (%d, %d). Try again.\n\n", cmd.Action, cmd.X, cmd.Y)
}

// NextCommand keeps prompting until a line parses. It returns [io.EOF] once
// the input runs out, or the context error as soon as ctx is done.
func (ui *UI) NextCommand(ctx context.Context) (driver.Command, error) {
	ui.once.Do(func() { go ui.scan() })
	for {
		if err := ctx.Err(); err != nil {
			return driver.Command{}, err
		}
		fmt.Fprint(ui.out, prompt)

		var line string
		select {
		case <-ctx.Done():
			return driver.Command{}, ctx.Err()
		case l, ok := <-ui.lines:
			if !ok {
				return driver.Command{}, ui.err
			}
			line = l
		}
		if err := ctx.Err(); err != nil {
			return driver.Command{}, err
		}

		cmd, err := driver.ParseCommand(line)
		if errors.Is(err, driver.ErrQuit) {
			return driver.Command{}, err
		}
		if err != nil {
			fmt.Fprintf(ui.out, "Invalid input: %s\n", err)
			continue
		}
		return cmd, nil
	}
}

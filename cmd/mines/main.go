package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/driver"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/terminal"
)

var (
	configPath string
	width      int
	height     int
	level      string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.IntVar(&width, "width", 0, "board width")
	flag.IntVar(&height, "height", 0, "board height")
	flag.StringVar(&level, "level", "", "difficulty: 0-2 or easy, medium, hard")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] [play|serve]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

// applyFlags lets explicitly set flags win over the config file and env.
func applyFlags(c *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			c.Width = width
		case "height":
			c.Height = height
		case "level":
			c.Level = level
		}
	})
	return c.Validate()
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func play(ctx context.Context, log *logrus.Logger, c *config.Config) error {
	params, err := c.GameParams()
	if err != nil {
		return err
	}
	game, err := mines.NewGame(params, createRand())
	if err != nil {
		return err
	}

	ui := terminal.New(os.Stdin, os.Stdout)
	err = driver.New(game, ui, ui, log.WithField("params", params.String())).Run(ctx)
	if errors.Is(err, driver.ErrQuit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func serve(ctx context.Context, log *logrus.Logger, c *config.Config) error {
	a, err := app.New(log, c)
	if err != nil {
		return err
	}
	return a.Start(ctx)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	c, err := config.Load(configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := applyFlags(c); err != nil {
		logrus.Fatal(err)
	}

	log, err := logging.New(c)
	if err != nil {
		logrus.Fatal(err)
	}
	mines.Log = log

	command := flag.Arg(0)
	if command == "" {
		command = "play"
	}
	if command == "play" {
		// the board owns the terminal; only the file hook keeps the logs
		log.SetOutput(io.Discard)
	}

	log.Info("starting up, mode = ", c.Mode)
	log.WithFields(c.Fields()).Debug("config")

	switch command {
	case "play":
		err = play(mainCtx, log, c)
	case "serve":
		err = serve(mainCtx, log, c)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatalf("exit reason: %s", err)
	}
}

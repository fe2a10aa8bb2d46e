package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/middleware"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	log    *logrus.Logger
	config *config.Config
	router *http.ServeMux
}

func New(log *logrus.Logger, config *config.Config) (*App, error) {
	app := &App{
		log:    log,
		config: config,
		router: http.NewServeMux(),
	}

	if err := app.loadRoutes(); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(a.config.Development(), a.config.Origins...),
		middleware.Logging(a.log),
	)
}

// Start serves until ctx is cancelled or the listener fails.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	})

	a.log.WithField("addr", a.config.Addr).Info("server listening")
	return g.Wait()
}

// Package server wires the Gatekeeper server together: configuration,
// structured logging, the PostgreSQL repositories with their migrations, the
// access and user services, and the gRPC transport. It owns graceful
// shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/SteveJRobertson/gatekeeper/internal/logging"
	"github.com/SteveJRobertson/gatekeeper/internal/server/config"
	gs "github.com/SteveJRobertson/gatekeeper/internal/server/grpc"
	"github.com/SteveJRobertson/gatekeeper/internal/server/report"
	"github.com/SteveJRobertson/gatekeeper/internal/server/repositories/repomanager"
	"github.com/SteveJRobertson/gatekeeper/internal/server/services"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	userService   *services.UserService
	accessService *services.AccessService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := repomanager.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := &repomanager.PostgresRepositoryManager{}
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	as := services.NewAccessService(db, rm, report.NewLogReporter(logger))

	return &App{config: cfg, logger: logger, userService: us, accessService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.accessService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

}

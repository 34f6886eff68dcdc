package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/oilquip/site-api/config"
	"github.com/oilquip/site-api/internal/cms"
	"github.com/oilquip/site-api/internal/db"
	"github.com/oilquip/site-api/internal/rest"
	"github.com/oilquip/site-api/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, uploader rest.Uploader, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := cms.NewManager(database)
	handler := rest.NewHandler(manager, uploader, cfg.Auth, logger)

	e := handler.RegisterRoutes()
	e.Any("/rpc", echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

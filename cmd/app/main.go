package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/oilquip/site-api/config"
	_ "github.com/oilquip/site-api/docs"
	"github.com/oilquip/site-api/internal/app"
	"github.com/oilquip/site-api/internal/db"
	"github.com/oilquip/site-api/internal/storage"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	cfg      config.Config
	lg       *slog.Logger
)

// @title Oilquip Site API
// @version 1.0
// @description Content API for the Oilquip corporate site: news, careers, downloadable resources and file uploads
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	ctx := context.Background()

	dbConnect := pg.Connect(&cfg.Database)
	if err := dbConnect.Ping(ctx); err != nil {
		dbConnect.Close()
		exitOnError(err)
	}

	if err := db.New(dbConnect).EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash); err != nil {
		dbConnect.Close()
		exitOnError(err)
	}

	uploader, err := storage.NewMinIO(cfg.Storage)
	if err != nil {
		dbConnect.Close()
		exitOnError(err)
	}

	service := app.New(cfg, dbConnect, uploader, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}

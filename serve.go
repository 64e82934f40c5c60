package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"apgi_backend/internals/configs"
	database "apgi_backend/internals/databases"
	authService "apgi_backend/internals/features/admins/auth/service"
	"apgi_backend/internals/helpers/uploads"
	"apgi_backend/internals/middlewares"
	routes "apgi_backend/internals/route"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Jalankan HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := configs.LoadEnv(logger)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger
	if !verbose {
		log = configs.ApplyLevel(logger, cfg.LogLevel)
	}

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("gagal menutup DB", zap.Error(err))
		}
	}()
	database.TunePool(db, log)
	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db, log); err != nil {
			return err
		}
	}
	database.WarmUpQueries(db, log)

	store, err := uploads.NewStore(cfg.UploadDir, cfg.UploadMaxDimension, log)
	if err != nil {
		return err
	}

	app := routes.NewApp(log)
	middlewares.SetupMiddlewares(app, cfg, log)
	routes.SetupRoutes(app, routes.Deps{
		DB:     db,
		Cfg:    cfg,
		Log:    log,
		Tokens: authService.NewTokenService(cfg.JWTSecret),
		Store:  store,
	})

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("✅ listening", zap.String("port", cfg.Port), zap.String("uploads", store.Dir()))
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return errors.New("server berhenti tanpa error")
	case <-ctx.Done():
	}

	// graceful shutdown: selesaikan request, hapus file lama yang masih antre, tutup DB
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warn("shutdown error", zap.Error(err))
	}
	store.Wait()
	return nil
}

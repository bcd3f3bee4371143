package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/internal/api"
	"github.com/satriahrh/alihbahasa/internal/auth"
	"github.com/satriahrh/alihbahasa/internal/intake"
	"github.com/satriahrh/alihbahasa/internal/janitor"
	"github.com/satriahrh/alihbahasa/usecase"
	"github.com/satriahrh/alihbahasa/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize adapters
	clients, err := newProviders(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize providers: %w", err)
	}
	defer clients.Close(logger)

	// Initialize usecase services
	recognition := usecase.NewRecognitionService(clients.detector, clients.stt, cfg.Timeouts.Recognition, logger)
	translation := usecase.NewTranslationService(clients.translator, cfg.Timeouts.Translation, logger)
	media := usecase.NewMediaService(recognition, translation, logger)

	in, err := intake.New(cfg.Upload.Dir, logger)
	if err != nil {
		return err
	}

	var issuer *auth.TokenIssuer
	if cfg.AuthEnabled() {
		issuer, err = auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			return err
		}
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	e := api.NewEcho(renderer, cfg.Upload.MaxBytes)
	api.InitRoutes(e, api.NewHandler(in, media, translation, logger), issuer, logger)

	sweeper := janitor.NewUploadJanitor(cfg.Upload.Dir, cfg.Upload.MaxAge, cfg.Upload.PurgeInterval, logger)
	sweeper.Start()

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Server.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		sweeper.Stop()
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("Server is shutting down...")
	sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server exited")
	return nil
}

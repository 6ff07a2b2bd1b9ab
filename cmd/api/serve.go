package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harentsoaR/carewave-api/internal/handlers"
	"github.com/harentsoaR/carewave-api/internal/utils"
)

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "Bring the schema up to date before serving")
	return cmd
}

func runServer(migrate bool) error {
	cfg := loadConfig()
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	s, err := openStore(ctx, cfg, migrate)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	statsCache, closeCache := openCache(ctx, cfg)
	defer closeCache()

	tokens := utils.NewTokenManager(cfg.JWTSecret)
	h := newHandler(s, statsCache, cfg, tokens)
	router := handlers.NewRouter(h, handlers.RouterConfig{
		Tokens:         tokens,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: cfg.TrustedProxies,
		LoginRateLimit: cfg.LoginRateLimit,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("url", cfg.APIURL).Str("env", cfg.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

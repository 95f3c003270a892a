package main

//
//  @title           lemonstand API
//  @version         1.0
//  @description     Menu, daily sales and profit records for a lemonade stand.
//  @termsOfService  https://github.com/guttosm/lemonstand
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/lemonstand
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stand
//  @tag.description Stand summary
//
//  @tag.name        menu
//  @tag.description Menu items with wholesale cost and selling price
//
//  @tag.name        sales
//  @tag.description Daily sales history
//
//  @tag.name        items
//  @tag.description Per-item and whole-menu aggregates
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/lemonstand/config"
	_ "github.com/guttosm/lemonstand/docs" // swagger docs
	"github.com/guttosm/lemonstand/internal/app"
	"github.com/guttosm/lemonstand/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// newServer builds the HTTP server for router on port.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// run serves router until ctx is done, then shuts the server down gracefully
// and calls cleanup.
//
// Returns:
//   - error: the listen error if the server could not start, or the shutdown error.
func run(ctx context.Context, router http.Handler, port string, cleanup func()) error {
	server := newServer(router, port)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		defer cleanup()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// main is the entry point of the lemonstand service.
//
// Flags:
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	config.LoadConfig()
	logger.Init(config.AppConfig.Log.Level, config.AppConfig.Log.Pretty)

	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	ctx, stop := signalContext()
	defer stop()

	if err := run(ctx, router, *port, cleanup); err != nil {
		logger.L().Fatal().Err(err).Msg("server stopped with error")
	}
	logger.L().Info().Msg("server exited gracefully")
}

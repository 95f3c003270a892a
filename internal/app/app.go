package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/lemonstand/config"
	"github.com/guttosm/lemonstand/internal/api"
	"github.com/guttosm/lemonstand/internal/domain/models"
	"github.com/guttosm/lemonstand/internal/logger"
	"github.com/guttosm/lemonstand/internal/service"
)

var errEmptyMenu = errors.New("menu is empty")

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the in-memory stand named by config.AppConfig.Stand.
//   - Wraps it in the stand service (locking, logging).
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function that logs the final state of the stand.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	if cfg.Stand.Name == "" {
		return nil, nil, fmt.Errorf("failed to initialize stand: %w", errors.New("stand name is required"))
	}

	stand := models.NewStand(cfg.Stand.Name)
	svc := service.NewStandService(stand)

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		AllowedOrigins:     cfg.Server.AllowedOrigins,
		RequestTimeout:     cfg.Server.RequestTimeout,
	})

	healthHandler := api.NewHealthHandler(readiness(svc))
	healthHandler.Register(router)

	cleanup := func() {
		ctx := context.Background()
		days, err := svc.Days(ctx)
		if err != nil {
			logger.L().Error().Err(err).Msg("failed to read recorded days")
			return
		}
		profit, err := svc.TotalProfit(ctx)
		if err != nil {
			logger.L().Error().Err(err).Msg("failed to compute total profit")
			return
		}
		logger.L().Info().
			Str("stand", svc.Name()).
			Int("days", days).
			Str("total_profit", profit.String()).
			Msg("stand closed")
	}

	return router, cleanup, nil
}

// readiness reports the stand ready once it has something on the menu.
func readiness(svc service.StandService) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		menu, err := svc.Menu(ctx)
		if err != nil {
			return err
		}
		if len(menu) == 0 {
			return errEmptyMenu
		}
		return nil
	}
}

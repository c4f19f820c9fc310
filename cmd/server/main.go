package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextkey_landing_go/config"
	"nextkey_landing_go/db"
	"nextkey_landing_go/handlers"
	"nextkey_landing_go/middleware"
	"nextkey_landing_go/models"
	"nextkey_landing_go/services"
	"nextkey_landing_go/services/leadapi"
	"nextkey_landing_go/services/logging"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := services.SiteDeps{
		Client: leadapi.NewClient(cfg.LeadAPIURL, cfg.LeadAPITimeout, logger),
		Logger: logger,
	}

	// Outcome log (no lead data is stored)
	var submissionLog *services.SubmissionLog
	if cfg.SubmissionLogEnabled {
		if err := db.Initialize(cfg.DBPath, cfg.Environment, &models.SubmissionEvent{}); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		submissionLog = services.NewSubmissionLog(db.DB, logger)
		deps.Events = submissionLog
	}

	if turnstile := services.NewTurnstile(cfg.TurnstileSecretKey); turnstile != nil {
		deps.Captcha = turnstile
	}

	middleware.InitAssetVersions("static", logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(logging.RequestLogger(logger))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.WithConfig(cfg))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg.IsProduction()))

	// Static files
	e.Static("/static", "static")

	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	limiter := middleware.NewPublicFormRateLimiter(cfg.PublicFormRateLimit, handlers.RateLimitedHandler)
	go limiter.Cleanup(ctx)

	for _, site := range services.NewSites(cfg, deps) {
		handlers.RegisterSite(e, site, limiter.Middleware())
		logger.Info("site mounted",
			zap.String("site", site.Key),
			zap.String("base_path", site.BasePath),
			zap.String("parent_strategy", site.Parent.Strategy.Name()),
			zap.String("child_strategy", site.Child.Strategy.Name()))
	}

	// Purge old outcome rows every hour
	if submissionLog != nil {
		go func() {
			ticker := time.NewTicker(1 * time.Hour)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					removed, err := submissionLog.PurgeBefore(time.Now().Add(-cfg.SubmissionLogRetention))
					if err != nil {
						logger.Error("failed to purge submission log", zap.Error(err))
						continue
					}
					logger.Debug("submission log purged", zap.Int64("removed", removed))
				}
			}
		}()
	}

	// Start server
	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("lead_api", cfg.LeadAPIURL))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if submissionLog != nil {
		submissionLog.Flush()
	}
}

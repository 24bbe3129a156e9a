// File: kympulse/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kympulse/config"
	"kympulse/database/repository"
	"kympulse/handlers"
	"kympulse/metrics"
	"kympulse/middleware"
	"kympulse/routes"
	"kympulse/services/capture"
	"kympulse/services/migration"
	"kympulse/templates"
	"kympulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	repos, err := repository.New(config.AppConfig.StoreDriver)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open record store: %v", err)
	}

	// Memory-backed runs keep session flags in process too.
	var sessions capture.SessionStore
	var redisClient *redis.Client
	if config.AppConfig.StoreDriver == config.StoreMemory {
		sessions = capture.NewMemorySessionStore()
	} else {
		redisClient = utils.GetSessionClient()
		sessions = capture.NewRedisSessionStore(redisClient, config.AppConfig.SessionTTL)
	}

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, time.Minute, config.AppConfig.StoreDriver, repos.Ping, redisClient)

	tmpl, err := templates.Load()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to parse templates: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.SetHTMLTemplate(tmpl)

	metricsManager := metrics.NewManager()

	// services.
	migrationService := &migration.DefaultMigrationService{
		Professionals: repos.Professionals,
		Services:      repos.Services,
		Specialties:   repos.Specialties,
	}
	captureService := capture.NewDefaultCaptureService(repos.Massages, sessions, config.AppConfig.CaptureTokenTTL)

	migrationHandler := handlers.NewMigrationHandler(migrationService, metricsManager, config.AppConfig.MigrationTimeout)
	captureHandler := handlers.NewCaptureHandler(captureService, metricsManager, config.IsProduction())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		MigrateProfessionalsHandler: migrationHandler.MigrateProfessionalsHandler,
		LinkServicesHandler:         migrationHandler.LinkServicesHandler,
		ResetLinksHandler:           migrationHandler.ResetLinksHandler,

		PulsePageHandler: captureHandler.PulsePageHandler,
		SurveyHandler:    captureHandler.SurveyHandler,

		HealthHandler: handlers.HealthHandler,
		Metrics:       metricsManager,

		AllowedOrigins:    config.AppConfig.AllowedOrigins,
		AdminTokenHash:    config.AppConfig.AdminTokenHash,
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (store: %s)...", srv.Addr, config.AppConfig.StoreDriver)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

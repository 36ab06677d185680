package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/config"
	"mktrading-backend/database"
	"mktrading-backend/migrations"
	"mktrading-backend/repositories"
	"mktrading-backend/routes"
	"mktrading-backend/services"
	"mktrading-backend/utils"
)

func main() {
	migrateCmd := flag.String("migrate", "", "Migration command (up/down/version)")
	steps := flag.Int("steps", 0, "Number of migration steps (0 means all)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("Error loading config")
	}
	log := config.NewLogger(cfg.Log, os.Stdout)

	if *migrateCmd != "" {
		if err := migrations.Run(cfg.Database.URL, *migrateCmd, *steps, log); err != nil {
			log.Fatal().Err(err).Str("command", *migrateCmd).Msg("Migration failed")
		}
		return
	}

	if cfg.Database.RunMigrations {
		if err := migrations.Run(cfg.Database.URL, migrations.CommandUp, 0, log); err != nil {
			log.Fatal().Err(err).Msg("Schema setup failed")
		}
	}

	db, err := config.ConnectDB(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	gw := database.NewGateway(db)
	defer gw.Close()
	log.Info().Msg("Database connected")

	tokens := utils.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	auth := services.NewAuthService(repositories.NewUserRepository(gw), tokens, log)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	err = auth.SeedAdmin(seedCtx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	cancelSeed()
	if err != nil {
		log.Fatal().Err(err).Msg("Admin seeding failed")
	}

	monitor := services.NewStoreMonitor(gw, log)
	if err := monitor.Start(cfg.Monitor.Schedule); err != nil {
		log.Fatal().Err(err).Msg("Invalid STORE_MONITOR_SCHEDULE")
	}
	defer monitor.Stop()

	gin.SetMode(cfg.GinMode)
	router := routes.SetupRouter(routes.Dependencies{
		Gateway:        gw,
		Tokens:         tokens,
		Auth:           auth,
		Reports:        services.NewReportService(gw, cfg.Reports.Location),
		AllowedOrigins: cfg.AllowedOrigins,
		Log:            log,
	})
	printRoutes(router, log)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return
	}
	log.Info().Msg("Server exited gracefully")
}

func printRoutes(r *gin.Engine, log zerolog.Logger) {
	for _, route := range r.Routes() {
		log.Debug().Str("method", route.Method).Str("path", route.Path).Msg("route")
	}
}

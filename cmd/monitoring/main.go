package main

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	authapi "github.com/gdk/monitoring/internal/auth/api"
	authdb "github.com/gdk/monitoring/internal/auth/database"
	authservice "github.com/gdk/monitoring/internal/auth/service"
	"github.com/gdk/monitoring/internal/config"
	"github.com/gdk/monitoring/internal/database"
	"github.com/gdk/monitoring/internal/middleware"
	monitoringapi "github.com/gdk/monitoring/internal/monitoring/api"
	monitoringdb "github.com/gdk/monitoring/internal/monitoring/database"
	monitoringservice "github.com/gdk/monitoring/internal/monitoring/service"
)

func main() {
	log.Info().Msg("Starting monitoring api server")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// configure log level from config
	switch strings.ToLower(cfg.Logging.Level) {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	db, err := database.New(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	users := authdb.NewUserStore(db)
	if err := bootstrapAdmin(ctx, users, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin user")
	}

	tokens := authservice.NewTokenService(cfg.Auth.SecretKey, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	authenticator := authservice.NewAuthenticator(users)

	metrics := monitoringdb.NewMetricStore(db)
	alerts := monitoringdb.NewAlertStore(db)
	thresholds := monitoringservice.ThresholdsFromConfig(cfg.Thresholds)
	ingest := monitoringservice.NewIngestService(db, metrics, alerts, thresholds)

	log.Info().
		Float64("cpu", thresholds.CPU).
		Float64("latency_ms", thresholds.LatencyMS).
		Float64("memory", thresholds.Memory).
		Msg("alert thresholds loaded")

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID)
	router.Use(middleware.Telemetry)
	router.GET("/internal/metrics", middleware.TelemetryHandler())

	authapi.NewApi(authenticator, tokens, router)
	monitoringapi.NewApi(ingest, metrics, alerts, router, tokens)

	log.Info().Msgf("Starting server on %s", cfg.Server.BindAddr)
	if err := router.Run(cfg.Server.BindAddr); err != nil {
		log.Fatal().Err(err).Msg("start monitoring api server failed.")
	}
	log.Info().Msg("monitoring api server exit...")
}

// bootstrapAdmin creates the default admin account when missing. Safe to
// run on every startup.
func bootstrapAdmin(ctx context.Context, users *authdb.UserStore, cfg *config.Config) error {
	hash, err := authservice.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		return err
	}
	return users.EnsureAdmin(ctx, cfg.Auth.AdminUsername, hash)
}

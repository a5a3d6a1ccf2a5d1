package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"promotrack/internal/adapter/cache"
	"promotrack/internal/adapter/geo"
	"promotrack/internal/adapter/http"
	"promotrack/internal/adapter/kafka"
	"promotrack/internal/adapter/memory"
	"promotrack/internal/adapter/postgres"
	"promotrack/internal/adapter/redis"
	"promotrack/internal/adapter/usecase"
	"promotrack/internal/config"
	"promotrack/internal/core/attribution"
	"promotrack/internal/core/fraud"
	"promotrack/internal/core/port"
	"promotrack/internal/core/rules"
	"promotrack/internal/db"
)

// main is the entry point of the promotrack service. It loads configuration,
// optionally runs database migrations, connects to PostgreSQL and Redis,
// wires the fraud detector, the attributor and the reward engine, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Env == "dev" {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	var (
		directory   port.Directory   = postgres.NewDirectory(pool)
		clicks      port.ClickLedger = postgres.NewClickLedger(pool)
		store       port.CounterStore
		invalidator port.SettingsInvalidator
		attrOpts    []attribution.Option
		client      *goredis.Client
	)
	switch cfg.Tracking.CounterBackend {
	case "memory":
		// single instance only; counters are lost on restart
		mem := memory.NewCounterStore(logger)
		go mem.Run(ctx, cfg.Tracking.SweepInterval)
		store = mem
	default:
		client, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		store = redis.NewCounterStore(client, cfg.Redis.KeyPrefix)

		c := cache.New(client, cfg.Redis.KeyPrefix, logger, cache.WithFetchTimeout(cfg.Cache.FetchTimeout))
		cached := cache.NewDirectory(directory, c, cfg.Cache.SettingsTTL)
		directory, invalidator = cached, cached
		cachedClicks := cache.NewClickLedger(clicks, c, cfg.Cache.StatsTTL)
		clicks = cachedClicks
		attrOpts = append(attrOpts, attribution.WithStatsInvalidator(cachedClicks))
	}

	var geolocator port.Geolocator
	if cfg.Geo.URL != "" {
		gc, err := geo.NewClient(cfg.Geo, logger)
		if err != nil {
			logger.Error("geo client error", slog.Any("error", err))
			return
		}
		geolocator = gc
	}

	var publisher port.DistributionPublisher
	if cfg.Kafka.Enabled() {
		kp, err := kafka.NewDistributionPublisher(cfg.Kafka)
		if err != nil {
			logger.Error("kafka publisher error", slog.Any("error", err))
			return
		}
		defer func() {
			if err := kp.Close(); err != nil {
				logger.Error("kafka close error", slog.Any("error", err))
			}
		}()
		publisher = kp
	}

	detector, err := fraud.NewDetector(store, geolocator, fraud.Config{
		MaxClicksPerIPPerDay:    cfg.Fraud.MaxClicksPerIPPerDay,
		MaxClicksPerIPPerHour:   cfg.Fraud.MaxClicksPerIPPerHour,
		BurstThreshold:          cfg.Fraud.BurstThreshold,
		BurstWindow:             cfg.Fraud.BurstWindow,
		TimingVarianceThreshold: cfg.Fraud.TimingVarianceThreshold,
		MinIndicators:           cfg.Fraud.MinIndicators,
		EscalationThreshold:     cfg.Fraud.EscalationThreshold,
		BlockDuration:           cfg.Fraud.BlockDuration,
		SessionTimeout:          cfg.Tracking.SessionTimeout,
		GeoTimeout:              cfg.Geo.Timeout,
		Whitelist:               cfg.Fraud.Whitelist,
		BotSignatures:           cfg.Fraud.BotSignatures,
		SuspiciousReferrers:     cfg.Fraud.SuspiciousReferrers,
	}, logger)
	if err != nil {
		logger.Error("fraud detector config error", slog.Any("error", err))
		return
	}

	attributor := attribution.NewAttributor(clicks, store, attribution.Config{
		UniqueWindow:    cfg.Tracking.UniqueWindow,
		SessionTimeout:  cfg.Tracking.SessionTimeout,
		Window:          cfg.Tracking.AttributionWindow,
		MaxAttributions: cfg.Tracking.MaxAttributions,
	}, logger, attrOpts...)

	engine := rules.NewEngine(directory, postgres.NewRewardLedger(pool), store, publisher, rules.Config{
		GlobalDailyCap:  cfg.Reward.GlobalDailyCap,
		DefaultCooldown: cfg.Reward.DefaultCooldown,
	}, logger)

	rewards := usecase.NewRewardUseCase(directory, engine, invalidator, cfg.Reward.Timeout, cfg.Tracking.ConversionEvent, logger)
	tracking := usecase.NewTrackingUseCase(directory, clicks, detector, attributor, rewards, usecase.TrackingConfig{
		FraudTimeout:    cfg.Fraud.Timeout,
		ConversionEvent: cfg.Tracking.ConversionEvent,
	}, logger)

	handler := httpadapter.NewHandler(tracking, rewards, cfg.HTTP, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serverErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rasahub/rasahub/internal/auth"
	"github.com/rasahub/rasahub/internal/config"
	"github.com/rasahub/rasahub/internal/db"
	httpx "github.com/rasahub/rasahub/internal/http"
	"github.com/rasahub/rasahub/internal/observability"
	"github.com/rasahub/rasahub/internal/repo/mongo"
	"github.com/rasahub/rasahub/internal/sales"
	"github.com/rasahub/rasahub/internal/storage"
)

func main() {
	// Load the config set up
	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	if cfg.JWTSecret == "" {
		log.Error("SECRET_KEY is required")
		os.Exit(1)
	}

	// tracing
	shutdownTracer, err := observability.InitTracer(context.Background(), "rasahub", cfg.OTLPEndpoint)

	if err != nil {
		log.Warn("tracer init failed, continuing without traces", "err", err)
		shutdownTracer = func(context.Context) error { return nil }
	}

	// document store
	database, err := db.Connect(cfg.MongoURI, cfg.DBName)

	if err != nil {
		log.Error("mongo connect failed", "err", err)
		os.Exit(1)
	}

	bootCtx, cancelBoot := config.WithTimeout(10 * time.Second)
	defer cancelBoot()

	if err := db.EnsureIndexes(bootCtx, database); err != nil {
		log.Error("index setup failed", "err", err)
		os.Exit(1)
	}

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	usersRepo := mongo.NewUsersRepo(database, prom)

	if err := db.EnsureAdminUser(bootCtx, usersRepo, cfg); err != nil {
		log.Error("admin seeding failed", "err", err)
		os.Exit(1)
	}

	// sales series cache; a dead redis only costs chart stability
	salesCache := sales.NewCache(sales.CacheConfig{Addr: cfg.RedisAddr})

	if err := salesCache.Ping(bootCtx); err != nil {
		log.Warn("redis unreachable, sales series will regenerate per request", "err", err)
	}

	// upload directories
	profileSaver, err := storage.NewSaver(cfg.ProfileUploadDir)

	if err != nil {
		log.Error("profile upload dir setup failed", "err", err)
		os.Exit(1)
	}

	menuSaver, err := storage.NewSaver(cfg.MenuUploadDir)

	if err != nil {
		log.Error("menu upload dir setup failed", "err", err)
		os.Exit(1)
	}

	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	router := httpx.NewRouter(httpx.RouterDeps{
		Cfg:          cfg,
		Database:     database,
		SalesCache:   salesCache,
		Prom:         prom,
		JWT:          jwtManager,
		ProfileSaver: profileSaver,
		MenuSaver:    menuSaver,
	})

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}

		if err := shutdownTracer(ctx); err != nil {
			log.Error("tracer shutdown failed", "err", err)
		}

		_ = salesCache.Close()
		_ = database.Client().Disconnect(ctx)
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}

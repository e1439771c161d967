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

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	httpadapter "adpanel/internal/adapter/http"
	"adpanel/internal/adapter/postgres"
	redisadapter "adpanel/internal/adapter/redis"
	"adpanel/internal/adapter/usecase"
	"adpanel/internal/config"
	"adpanel/internal/core/port"
	"adpanel/internal/core/session"
	"adpanel/internal/core/shell"
	"adpanel/internal/db"
	"adpanel/internal/metrics"
	"adpanel/internal/notify"
)

// main is the entry point of the dashboard server. It loads configuration,
// optionally migrates and seeds the database, wires repositories, usecases
// and the notification hub, then serves HTTP until a termination signal
// arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	if err = run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	layout, err := shell.Default()
	if cfg.Shell.LayoutFile != "" {
		layout, err = shell.Load(cfg.Shell.LayoutFile)
	}
	if err != nil {
		return fmt.Errorf("shell layout: %w", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	hub := notify.NewHub(logger, m)

	g, ctx := errgroup.WithContext(ctx)

	var events port.EventPublisher = hub
	if cfg.Redis.Enabled() {
		client, err := redisadapter.NewClient(ctx, cfg.Redis.Addr)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer client.Close()
		bus := redisadapter.NewSignalBus(client, cfg.Redis.Channel, hub, logger)
		events = bus
		g.Go(func() error { return bus.Run(ctx) })
	}

	users := postgres.NewUserRepository(pool)
	blacklist := postgres.NewBlacklistRepository(pool)

	handler, err := httpadapter.NewHandler(httpadapter.Deps{
		Auth:         usecase.NewAuthUseCase(users),
		Identifiers:  usecase.NewIdentifierUseCase(postgres.NewIdentifierRepository(pool)),
		Campaigns:    usecase.NewCampaignUseCase(postgres.NewCampaignRepository(pool), cfg.Grid.Policy()),
		Blacklist:    usecase.NewBlacklistUseCase(blacklist),
		LinkRequests: usecase.NewLinkRequestUseCase(postgres.NewLinkRequestRepository(pool), blacklist, users, events, logger),
		Lookups:      usecase.NewLookupUseCase(postgres.NewLookupRepository(pool)),
		Layout:       layout,
		Sealer:       session.NewSealer(cfg.Session.Secret),
		Cookie: httpadapter.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.SecureCookie,
		},
		Events:  hub.ServeWebSocket,
		Metrics: m,
	}, logger)
	if err != nil {
		return fmt.Errorf("http handler: %w", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	return g.Wait()
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/clinicops/notes-dashboard/internal/api/http"
	"github.com/clinicops/notes-dashboard/internal/api/http/handlers"
	"github.com/clinicops/notes-dashboard/internal/cache"
	"github.com/clinicops/notes-dashboard/internal/catalog"
	"github.com/clinicops/notes-dashboard/internal/config"
	"github.com/clinicops/notes-dashboard/internal/events"
	"github.com/clinicops/notes-dashboard/internal/observability"
	"github.com/clinicops/notes-dashboard/internal/persistence"
	"github.com/clinicops/notes-dashboard/internal/repository"
	"github.com/clinicops/notes-dashboard/internal/service"
	"github.com/clinicops/notes-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	source := catalog.NewStaticSource(catalog.Default())
	if pg.Enabled() {
		pool := pg.PoolHandle()
		source = catalog.NewRepositorySource(repository.NewDepartmentRepository(pool), repository.NewDoctorRepository(pool))
	}
	roster, err := source.Load(ctx)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.String("source", source.Name()), zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.String("source", source.Name()),
		zap.String("version", roster.Version()),
		zap.Int("departments", len(roster.Departments())),
		zap.Int("doctors", len(roster.Doctors())),
	)

	metrics := observability.NewMetrics()
	memo, err := cache.NewMemo(cache.Options{
		Size:    cfg.Cache.LRUSize,
		TTL:     cfg.Cache.TTL(),
		Shared:  redis.Client,
		Logger:  logger,
		Metrics: metrics,
	})
	if err != nil {
		logger.Fatal("failed to build dashboard cache", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger, metrics))

	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		Catalog:    roster,
		Memo:       memo,
		Sessions:   service.NewSessionStore(),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	go worker.RunSessionJanitor(ctx, dashboardService, cfg.Session.SweepInterval(), cfg.Session.IdleTTL(), logger)

	app := httptransport.NewApp(cfg.App.Name, logger, metrics, cfg.App.RequestTimeout(), httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, source.Name(), pg, redis),
		Catalog:   handlers.NewCatalogHandler(dashboardService),
		Dashboard: handlers.NewDashboardHandler(dashboardService, cfg.App.Version),
		Metrics:   metrics,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

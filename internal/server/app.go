// Package server wires configuration, storage, remote services and the gRPC
// endpoint into a runnable application and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrijs2005/freshify/internal/logging"
	"github.com/dmitrijs2005/freshify/internal/server/cache"
	"github.com/dmitrijs2005/freshify/internal/server/config"
	"github.com/dmitrijs2005/freshify/internal/server/metrics"
	"github.com/dmitrijs2005/freshify/internal/server/remote"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/freshify/internal/server/services"
	"github.com/dmitrijs2005/freshify/internal/server/storage"

	gs "github.com/dmitrijs2005/freshify/internal/server/grpc"
)

const (
	tokenPurgeInterval   = time.Hour
	cacheJanitorInterval = time.Minute
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	db               *sql.DB
	registry         *prometheus.Registry
	cache            cache.Cache
	userService      *services.UserService
	inventoryService *services.InventoryService
	scanService      *services.ScanService
	recipeService    *services.RecipeService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, storage.Options{
		User:     c.S3RootUser,
		Password: c.S3RootPassword,
		Bucket:   c.S3Bucket,
		Region:   c.S3Region,
		Endpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("s3 init error: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	met := metrics.New(registry)

	remoteOpts := remote.Options{
		Timeout: c.RemoteTimeout,
		Limiter: remote.NewLimiter(c.RemoteRate, c.RemoteBurst),
		Metrics: met,
		Logger:  logger.With("module", "remote"),
	}

	app := &App{config: c, logger: logger, db: db, registry: registry}
	app.cache = app.newCache(ctx)

	images := services.NewImageResolver(db, rm, store, app.cache, c.ImageURLTTL, logger)
	app.userService = services.NewUserService(db, rm, c)
	app.inventoryService = services.NewInventoryService(db, rm, images, met, logger, c.DeleteOnComplete)
	app.scanService = services.NewScanService(store, remote.NewAnalysisClient(c.AnalysisServiceURL, remoteOpts))
	app.recipeService = services.NewRecipeService(db, rm, remote.NewRecipeClient(c.RecipeServiceURL, remoteOpts))

	return app, nil
}

// newCache returns Redis when configured and reachable, otherwise an
// in-process cache.
func (app *App) newCache(ctx context.Context) cache.Cache {
	if app.config.RedisAddr != "" {
		rc := cache.NewRedisCache(cache.NewRedisClient(app.config.RedisAddr))
		err := rc.Ping(ctx)
		if err == nil {
			return rc
		}
		app.logger.Warn(ctx, "redis unavailable, using in-memory cache", "error", err)
		_ = rc.Close()
	}
	return cache.NewMemoryCache()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.userService, app.inventoryService, app.scanService, app.recipeService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(app.registry))
	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, "metrics server failed", "error", err)
	}
}

func (app *App) purgeTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.userService.PurgeExpiredTokens(ctx)
			if err != nil {
				app.logger.Warn(ctx, "refresh token purge failed", "error", err)
				continue
			}
			app.logger.Debug(ctx, "purged refresh tokens", "count", n)
		}
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.purgeTokens(ctx)
	}()

	if mc, ok := app.cache.(*cache.MemoryCache); ok {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mc.RunJanitor(ctx, cacheJanitorInterval)
		}()
	}

	wg.Wait()

	if rc, ok := app.cache.(*cache.RedisCache); ok {
		_ = rc.Close()
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}

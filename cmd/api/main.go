package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/handler"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/logger"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	redisadapter "github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/redis"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/websocket"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/config"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/port"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service/fare"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service/geo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	if cfg.JWTSecret == "" {
		appLogger.Fatal("JWT_SECRET is required")
	}

	dbConfig, err := pgxpool.ParseConfig(cfg.DBUrl)
	if err != nil {
		appLogger.Fatal("unable to parse db config", zap.Error(err))
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		appLogger.Fatal("unable to create db pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		appLogger.Fatal("cannot connect to db", zap.Error(err))
	}
	appLogger.Info("connected to database via pgxpool")

	store := postgres.NewStore(pool)

	var cache *redisadapter.Cache
	redisClient := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	cache = redisadapter.NewCache(redisClient, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	if err := cache.Ping(context.Background()); err != nil {
		// The store answers everything the cache would; run without it.
		appLogger.Warn("redis unavailable, reference cache disabled", zap.Error(err))
		cache = nil
	}

	hub := websocket.NewHub(appLogger)
	go hub.Run()

	matrix := geo.NewMatrix(appLogger)
	calculator := fare.NewCalculator(geo.NewChainResolver(matrix, geo.NewEstimator()))

	authSvc := service.NewAuthService(store, cfg.JWTSecret)
	catalogSvc := service.NewCatalogService(store, refCache(cache), appLogger)
	quoteSvc := service.NewQuoteService(store, refCache(cache), appLogger)
	bookingSvc := service.NewBookingService(store, hub, appLogger)

	router := handler.NewRouter(handler.RouterDeps{
		Env:      cfg.Env,
		AuthSvc:  authSvc,
		Auth:     handler.NewAuthHandler(authSvc),
		Quotes:   handler.NewQuoteHandler(quoteSvc, calculator),
		Bookings: handler.NewBookingHandler(bookingSvc),
		Catalog:  handler.NewCatalogHandler(catalogSvc),
		Packages: handler.NewPackageHandler(catalogSvc),
		WS:       handler.NewWSHandler(hub, authSvc),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		appLogger.Info("starting server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("server exiting")
}

// refCache avoids handing services a typed-nil interface when redis is
// down.
func refCache(c *redisadapter.Cache) port.ReferenceCache {
	if c == nil {
		return nil
	}
	return c
}

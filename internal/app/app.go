package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	natsio "github.com/nats-io/nats.go"
	memoryadapter "github.com/ouissal-yahyouni/VeggieMarket/internal/adapter/memory"
	natsadapter "github.com/ouissal-yahyouni/VeggieMarket/internal/adapter/nats"
	redisadapter "github.com/ouissal-yahyouni/VeggieMarket/internal/adapter/redis"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/app/config"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/logger"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/metrics"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/port/rest"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/service"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg           *config.Config
	log           logger.Logger
	server        *rest.Server
	metricsServer *http.Server
	redisClient   *redis.Client
	natsConn      *natsio.Conn
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Infof("Configuration loaded: Env=%s, HTTP port: %s", cfg.Env, cfg.HTTPServer.Port)

	appLogger.Info("Initializing Redis client...")
	redisClient, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}
	appLogger.Info("Redis client initialized successfully")

	cartRepo := redisadapter.NewCartRepository(redisClient)
	catalogRepo := memoryadapter.NewSeededCatalogRepository()
	appLogger.Info("Repositories initialized")

	var natsConn *natsio.Conn
	var cartEvents service.CartEventPublisher
	if cfg.NATS.Enabled {
		natsConn, err = natsadapter.NewConnection(cfg.NATS, appLogger)
		if err != nil {
			_ = redisClient.Close()
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		publisher, err := natsadapter.NewNATSPublisher(natsConn)
		if err != nil {
			natsConn.Close()
			_ = redisClient.Close()
			return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
		}
		cartEvents = natsadapter.NewCartEventsPublisher(publisher)
		appLogger.Info("NATS cart event publisher initialized")
	} else {
		appLogger.Info("NATS disabled, cart events will not be published")
	}

	cartService := service.NewCartService(cartRepo, cartEvents, appLogger, service.CartServiceConfig{
		CartTTL: cfg.Cart.TTL,
	})
	catalogService := service.NewCatalogService(catalogRepo, appLogger)
	appLogger.Info("Services initialized")

	metricsManager := metrics.NewManager("veggiemarket")
	router := rest.NewRouter(cartService, catalogService, cfg.Session, appLogger, metricsManager)
	server := rest.NewServer(cfg.HTTPServer, router, appLogger)
	metricsServer := metrics.NewServer(cfg.Metrics.Port, appLogger, metricsManager.Registry)

	return &App{
		cfg:           cfg,
		log:           appLogger,
		server:        server,
		metricsServer: metricsServer,
		redisClient:   redisClient,
		natsConn:      natsConn,
	}, nil
}

func (a *App) Run() {
	a.log.Info("Starting application components...")

	go func() {
		if err := a.server.Start(); err != nil {
			a.log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	go func() {
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Errorf("Metrics server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down application...", receivedSignal)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPServer.TimeoutGraceful+5*time.Second)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error during HTTP server graceful shutdown: %v", err)
	} else {
		a.log.Info("HTTP server stopped successfully")
	}

	if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
		a.log.Errorf("Error during metrics server shutdown: %v", err)
	}

	if a.natsConn != nil {
		if err := a.natsConn.Drain(); err != nil {
			a.log.Errorf("Error draining NATS connection: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing Redis client: %v", err)
		} else {
			a.log.Info("Redis client closed successfully")
		}
	}

	a.log.Info("Application shut down successfully")
}

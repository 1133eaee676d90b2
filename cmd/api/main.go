package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/api/middleware"
	"github.com/tokentreat/treat-service/internal/api/rest"
	"github.com/tokentreat/treat-service/internal/api/server"
	"github.com/tokentreat/treat-service/internal/api/shared/executor"
	"github.com/tokentreat/treat-service/internal/config"
	"github.com/tokentreat/treat-service/internal/creation"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/imagegen"
	"github.com/tokentreat/treat-service/internal/inflight"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/metadata"
	"github.com/tokentreat/treat-service/internal/notify"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
	"github.com/tokentreat/treat-service/internal/ratelimit"
	"github.com/tokentreat/treat-service/internal/registry"
	"github.com/tokentreat/treat-service/internal/storage"
	"github.com/tokentreat/treat-service/internal/store"
	"github.com/tokentreat/treat-service/internal/token"
	"github.com/tokentreat/treat-service/internal/treat"
	"github.com/tokentreat/treat-service/internal/uri"
)

const maxImageSessions = 1024

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Service:         "treat-api",
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"chain": string(cfg.Ethereum.ChainID),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Treat API")

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	httpClient := adapter.NewHTTPClient(cfg.Storage.Timeout)
	uploadClient := adapter.NewSingleShotHTTPClient(cfg.Storage.Timeout)
	uriResolver := uri.NewResolver(uri.Config{IPFSGateway: cfg.URI.IPFSGateway})

	// Persistence is optional; without a database runs live in memory and the index source is off
	var (
		runStore creation.RunStore = creation.NewMemoryRunStore()
		index    treat.CandidateIndex
	)
	if cfg.Database.Enabled() {
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
		}
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		dataStore := store.NewPGStore(db)
		runStore = dataStore
		index = dataStore
		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)
	} else {
		logger.WarnCtx(ctx, "Database not configured, creation runs are kept in memory")
	}

	// Redis backs the token cache and the shared image generation limit when reachable
	var redisClient adapter.RedisClient
	if cfg.Cache.RedisAddr != "" {
		rc := adapter.NewRedisClient(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		defer func() {
			if err := rc.Close(); err != nil {
				logger.Error(err, zap.String("component", "redis"))
			}
		}()
		if err := rc.Ping(ctx); err != nil {
			logger.WarnCtx(ctx, "Redis unreachable, using in-memory token cache and local rate limit", zap.Error(err))
		} else {
			redisClient = rc
			logger.InfoCtx(ctx, "Connected to Redis", zap.String("addr", cfg.Cache.RedisAddr))
		}
	}

	tokenCache := token.NewMemoryCache()
	imageLimiter := ratelimit.NewLocal(cfg.ImageGen.RPS, 1)
	if redisClient != nil {
		tokenCache = token.NewRedisCache(redisClient, jsonAdapter, cfg.Cache.TTL)
		imageLimiter = ratelimit.NewDistributed(ratelimit.Config{
			Name:  "imagegen",
			RPS:   cfg.ImageGen.RPS,
			Burst: 1,
		}, redisClient.NewRateLimiter(), clock)
	}

	// Notifications go to the log and, when configured, to NATS
	notifier := notify.NewLogNotifier(clock)
	if cfg.NATS.URL != "" {
		natsNotifier, err := notify.NewNATSNotifier(ctx, notify.NATSConfig{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		defer natsNotifier.Close()
		notifier = notify.Multi(notifier, natsNotifier)
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	}
	if cfg.Webhook.URL != "" {
		webhookNotifier := notify.NewWebhookNotifier(notify.WebhookConfig{
			URL:     cfg.Webhook.URL,
			Secret:  cfg.Webhook.Secret,
			Workers: cfg.Webhook.Workers,
			Timeout: cfg.Webhook.Timeout,
		}, adapter.NewHTTPClient(cfg.Webhook.Timeout), jsonAdapter, clock)
		defer webhookNotifier.Close()
		notifier = notify.Multi(notifier, webhookNotifier)
		logger.InfoCtx(ctx, "Webhook notifications enabled", zap.String("url", cfg.Webhook.URL))
	}
	tracker := notify.NewLoadingTracker(notifier)

	// Chain connector
	chain := cfg.Ethereum.ChainID
	connector := ethereum.NewConnector(ethereum.Config{
		Chains: map[domain.Chain]ethereum.ChainConfig{
			chain: {
				RPCURL:          cfg.Ethereum.RPCURL,
				ContractAddress: cfg.Ethereum.ContractAddress,
				PrivateKey:      cfg.Ethereum.PrivateKey,
			},
		},
		CallTimeout:         cfg.Ethereum.CallTimeout,
		ConfirmationTimeout: cfg.Ethereum.ConfirmationTimeout,
	}, adapter.NewEthClientDialer())
	defer connector.Close()

	// Offered payment tokens
	tokenRegistry := registry.NewOpenTokenRegistry()
	if cfg.Treats.TokenRegistryPath != "" {
		tokenRegistry, err = registry.NewTokenRegistryLoader(adapter.NewFileSystem(), jsonAdapter).Load(cfg.Treats.TokenRegistryPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load token registry",
				zap.Error(err),
				zap.String("path", cfg.Treats.TokenRegistryPath))
		}
		logger.InfoCtx(ctx, "Loaded token registry", zap.String("path", cfg.Treats.TokenRegistryPath))
	} else {
		logger.WarnCtx(ctx, "Token registry path not configured, any token address is accepted")
	}

	// Domain services
	guard := inflight.NewGuard()
	tokens := token.NewResolver(cfg.Ethereum.NativeSymbol, tokenCache)
	quoter := creation.NewQuoter(tokens)
	fetcher := treat.NewFetcher(tokens, metadata.NewFetcher(httpClient, uriResolver, jsonAdapter), clock)

	aggregator := treat.NewAggregator(treat.AggregatorConfig{
		Chain:         chain,
		ScanBound:     cfg.Treats.BurnScanBound,
		DefaultSource: treat.Source(cfg.Treats.BurnableSource),
		PoolSize:      cfg.Treats.WorkerPoolSize,
	}, connector, fetcher, index, tracker)
	defer aggregator.Close()

	imageClient := imagegen.NewClient(imagegen.Config{
		URL:         cfg.ImageGen.URL,
		AuthToken:   cfg.ImageGen.AuthToken,
		QuietPeriod: cfg.ImageGen.QuietPeriod,
	}, httpClient, jsonAdapter, imageLimiter)
	imageSessions := imagegen.NewSessions(ctx, imageClient, clock, cfg.ImageGen.QuietPeriod, maxImageSessions)
	defer imageSessions.Close()

	orchestrator := creation.NewOrchestrator(chain, creation.Deps{
		Connector:   connector,
		Quoter:      quoter,
		Storage:     storage.NewClient(storage.Config{APIURL: cfg.Storage.APIURL, APIKey: cfg.Storage.APIKey}, uploadClient, jsonAdapter, uriResolver),
		ImageGen:    imageClient,
		HTTPClient:  httpClient,
		URIResolver: uriResolver,
		Runs:        runStore,
		Guard:       guard,
		Notifier:    notifier,
		Tracker:     tracker,
		Clock:       clock,
		JSON:        jsonAdapter,
		JCS:         jcsAdapter,
	})

	exec := executor.NewExecutor(executor.Deps{
		Chain:        chain,
		Connector:    connector,
		Aggregator:   aggregator,
		Burner:       treat.NewBurner(chain, connector, guard, notifier, tracker, index),
		Orchestrator: orchestrator,
		Quoter:       quoter,
		Tokens:       tokens,
		Registry:     tokenRegistry,
		Images:       imageSessions,
	})

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, rest.NewHandler(exec))

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("message", "Server forced to shutdown"))
	}

	logger.Info("API server stopped")
}

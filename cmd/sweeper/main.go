package main

import (
	"context"
	"errors"
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
	"github.com/tokentreat/treat-service/internal/config"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
	"github.com/tokentreat/treat-service/internal/store"
	"github.com/tokentreat/treat-service/internal/sweeper"
)

const shutdownTimeout = 5 * time.Second

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Service:         "treat-sweeper",
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.ErrorCtx(ctx, err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
	logger.Info("Sweeper stopped")
}

// run sweeps the burn index until ctx is canceled or a run-once pass completes
func run(ctx context.Context, cfg *config.SweeperConfig) error {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		return fmt.Errorf("failed to configure connection pool: %w", err)
	}

	// Reads only, so the connector gets no private key
	connector := ethereum.NewConnector(ethereum.Config{
		Chains: map[domain.Chain]ethereum.ChainConfig{
			cfg.Ethereum.ChainID: {
				RPCURL:          cfg.Ethereum.RPCURL,
				ContractAddress: cfg.Ethereum.ContractAddress,
			},
		},
		CallTimeout: cfg.Ethereum.CallTimeout,
	}, adapter.NewEthClientDialer())
	defer connector.Close()

	burnSweeper := sweeper.NewBurnIndexSweeper(sweeper.BurnIndexSweeperConfig{
		Chain:     cfg.Ethereum.ChainID,
		Interval:  cfg.Sweeper.Interval,
		BatchSize: cfg.Sweeper.BatchSize,
		PoolSize:  cfg.Sweeper.PoolSize,
		RunOnce:   cfg.Sweeper.RunOnce,
	}, connector, store.NewPGStore(db), adapter.NewClock())

	logger.InfoCtx(ctx, "Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)

	sweepErr := burnSweeper.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := burnSweeper.Stop(shutdownCtx); err != nil {
		logger.WarnCtx(shutdownCtx, "Sweeper did not stop cleanly", zap.Error(err))
	}

	if sweepErr != nil && !errors.Is(sweepErr, context.Canceled) {
		return sweepErr
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpAdapter "github.com/tiendanorte/ledger/internal/adapter/http"
	"github.com/tiendanorte/ledger/internal/adapter/http/handler"
	"github.com/tiendanorte/ledger/internal/adapter/http/middleware"
	postgresRepo "github.com/tiendanorte/ledger/internal/adapter/repository/postgres"
	redisRepo "github.com/tiendanorte/ledger/internal/adapter/repository/redis"
	"github.com/tiendanorte/ledger/internal/adapter/ratesource"
	"github.com/tiendanorte/ledger/internal/infrastructure/config"
	"github.com/tiendanorte/ledger/internal/infrastructure/logger"
	"github.com/tiendanorte/ledger/internal/infrastructure/postgres"
	"github.com/tiendanorte/ledger/internal/infrastructure/redis"
	"github.com/tiendanorte/ledger/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, resolveMigrationsPath(), log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	receivableRepo := postgresRepo.NewReceivableRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)

	// Rate source is optional; without it only manual rates work
	var source usecase.RateSource
	if cfg.RateSourceURL != "" {
		source = ratesource.NewClient(cfg.RateSourceURL, cfg.RateSourceTimeout)
		log.Info().Str("url", cfg.RateSourceURL).Msg("exchange rate source configured")
	}

	// Use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen)
	entryUC := usecase.NewEntryUseCase(txManager, accountRepo, entryRepo, idGen, retrier)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)
	receivableUC := usecase.NewReceivableUseCase(receivableRepo, idGen)
	rateUC := usecase.NewRateUseCase(source, cache)

	// Handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	entryHandler := handler.NewEntryHandler(entryUC)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	receivableHandler := handler.NewReceivableHandler(receivableUC)
	rateHandler := handler.NewRateHandler(rateUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:    accountHandler,
		EntryHandler:      entryHandler,
		LedgerHandler:     ledgerHandler,
		ReceivableHandler: receivableHandler,
		RateHandler:       rateHandler,
		HealthHandler:     healthHandler,
		IdempotencyStore:  idempotencyStore,
		RateLimiter:       middleware.NewRateLimiter(100, 200),
		LoggingMiddleware: middleware.NewLoggingMiddleware(log),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func resolveMigrationsPath() string {
	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		return path
	}
	return "internal/infrastructure/postgres/migrations"
}

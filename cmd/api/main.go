package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valvetrace/config"
	"valvetrace/internal/adapter/chain"
	httpHandler "valvetrace/internal/adapter/http/handler"
	pgStorage "valvetrace/internal/adapter/storage/postgres"
	redisStorage "valvetrace/internal/adapter/storage/redis"
	"valvetrace/internal/core/ports"
	"valvetrace/internal/service"
	"valvetrace/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting valvetrace registry")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	assetRepo := pgStorage.NewAssetRepo(pool)
	transferRepo := pgStorage.NewTransferRepo(pool)
	returnRepo := pgStorage.NewReturnRepo(pool)
	actorRepo := pgStorage.NewActorRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	assetCache := redisStorage.NewAssetCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Confirmation oracle is optional: without a URL the registry runs
	// local-only and transfer results carry no chain confirmation.
	var oracle ports.ConfirmationOracle
	if cfg.Oracle.URL != "" {
		oracle = chain.NewOracle(cfg.Oracle, sigSvc, &http.Client{Timeout: cfg.Oracle.Timeout}, log)
		log.Info().Str("url", cfg.Oracle.URL).Msg("Chain confirmation oracle enabled")
	} else {
		log.Warn().Msg("Chain confirmation oracle not configured, running local-only")
	}

	// Initialize business services
	authSvc := service.NewAuthService(actorRepo, hashSvc, tokenSvc)
	registrySvc := service.NewRegistryService(assetRepo, transferRepo, oracle, assetCache, auditSvc, log)
	transferSvc := service.NewTransferService(assetRepo, transferRepo, transactor, oracle, assetCache, auditSvc, log)
	returnSvc := service.NewReturnService(assetRepo, transferRepo, returnRepo, transactor, oracle, assetCache, auditSvc, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		RegistrySvc:    registrySvc,
		TransferSvc:    transferSvc,
		ReturnSvc:      returnSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

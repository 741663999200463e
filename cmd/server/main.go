package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tamga/internal/audit"
	"tamga/internal/certificate"
	certservice "tamga/internal/certificate/service"
	"tamga/internal/ipfs"
	issuerhandler "tamga/internal/issuer/handler"
	"tamga/internal/issuer/registry"
	issuerservice "tamga/internal/issuer/service"
	"tamga/internal/ledger"
	"tamga/internal/platform/config"
	"tamga/internal/platform/httpserver"
	"tamga/internal/platform/logger"
	"tamga/internal/platform/metrics"
	"tamga/internal/platform/postgres"
	"tamga/internal/platform/redis"
	"tamga/internal/property"
	propertyhandler "tamga/internal/property/handler"
	"tamga/internal/server"
	userhandler "tamga/internal/user/handler"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	// Certificate store: postgres when configured, seeded memory otherwise.
	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err.Error())
		os.Exit(1)
	}
	var certStore certificate.Store
	if db != nil {
		defer db.Close()
		pg := certificate.NewPostgres(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("failed to ensure schema", "error", err.Error())
			os.Exit(1)
		}
		certStore = pg
		log.Info("certificate store ready", "mode", "postgres")
	} else {
		mem := certificate.NewInMemoryStore()
		certificate.SeedDemoData(mem)
		certStore = mem
		log.Info("certificate store ready", "mode", "memory")
	}

	// Issuer registry: redis when configured, memory otherwise.
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err.Error())
		os.Exit(1)
	}
	var reg registry.Registry
	if redisClient != nil {
		defer redisClient.Close()
		reg, err = registry.NewRedis(ctx, redisClient.Client, registry.DefaultIssuers)
		if err != nil {
			log.Error("failed to seed issuer registry", "error", err.Error())
			os.Exit(1)
		}
		log.Info("issuer registry ready", "mode", "redis")
	} else {
		reg = registry.NewInMemory(registry.DefaultIssuers)
		log.Info("issuer registry ready", "mode", "memory")
	}

	m := metrics.New()
	auditSvc := audit.NewService(audit.NewInMemoryStore(), log)
	ledgerClient := ledger.New(cfg.Solana, log)
	uploader := ipfs.New(cfg.Pinata, log)

	issuerSvc := issuerservice.New(reg, certStore, uploader, ledgerClient, auditSvc, m, log)
	certSvc := certservice.New(certStore)
	propertySvc := property.NewService(property.NewInMemoryStore(), auditSvc, m, log)

	router := server.NewRouter(server.Dependencies{
		Issuer:   issuerhandler.New(issuerSvc, ledgerClient, cfg.Solana.Network, log),
		User:     userhandler.New(certSvc, propertySvc, log),
		Property: propertyhandler.New(propertySvc, log),
		Metrics:  m,
		Logger:   log,
	})

	srv := httpserver.New(cfg.Addr, router)

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr, "network", cfg.Solana.Network)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err.Error())
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "error", err.Error())
			os.Exit(1)
		}
	}
	log.Info("server stopped")
}

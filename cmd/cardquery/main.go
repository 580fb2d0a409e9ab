package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardquery/internal/config"
	dbRedis "github.com/kailas-cloud/cardquery/internal/db/redis"
	"github.com/kailas-cloud/cardquery/internal/index"
	logpkg "github.com/kailas-cloud/cardquery/internal/logger"
	"github.com/kailas-cloud/cardquery/internal/metrics"
	"github.com/kailas-cloud/cardquery/internal/repository/cardfile"
	"github.com/kailas-cloud/cardquery/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/cardquery/internal/transport/chi"
	corpusuc "github.com/kailas-cloud/cardquery/internal/usecase/corpus"
	healthuc "github.com/kailas-cloud/cardquery/internal/usecase/health"
	searchuc "github.com/kailas-cloud/cardquery/internal/usecase/search"
	"github.com/kailas-cloud/cardquery/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting cardquery API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("corpus_files", cfg.Corpus.Files),
		zap.Bool("catalog", cfg.Corpus.Catalog.Enabled),
	)

	// Search engine
	observer, err := metrics.NewSearchObserver(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("Failed to register search metrics", zap.Error(err))
	}
	opts := []searchuc.Option{searchuc.WithObserver(observer)}
	if cfg.Search.CacheSize > 0 {
		cache, err := searchuc.NewLRUCache(cfg.Search.CacheSize)
		if err != nil {
			logger.Fatal("Failed to create result cache", zap.Error(err))
		}
		opts = append(opts, searchuc.WithCache(cache))
	}
	holder := index.NewHolder()
	searchSvc := searchuc.New(holder, searchuc.Config{
		LargeResultThreshold: cfg.Search.LargeResultThreshold,
		AutocompleteLimit:    cfg.Search.AutocompleteLimit,
		SuggestionLimit:      cfg.Search.SuggestionLimit,
		MaxPageSize:          cfg.Search.MaxPageSize,
	}, logger, opts...)

	// Corpus sources: files first, then the catalog
	sources := make([]corpusuc.Source, 0, len(cfg.Corpus.Files)+1)
	for _, path := range cfg.Corpus.Files {
		sources = append(sources, cardfile.New(path))
	}

	// Pass nil interfaces (not typed nil pointers) when no catalog is configured.
	var (
		saver    corpusuc.Saver
		dbPinger healthuc.DBPinger
	)
	if cfg.Corpus.Catalog.Enabled {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to database",
			zap.String("db_driver", cfg.Database.Driver),
			zap.Strings("db_addrs", cfg.Database.Addrs),
		)

		repo := catalog.New(store, cfg.Corpus.Catalog.KeyPrefix)
		sources = append(sources, repo)
		saver = repo
		dbPinger = store
	}

	corpusSvc := corpusuc.New(searchSvc, sources, saver, cfg.Corpus.Concurrency, logger)
	if cfg.Corpus.ShouldLoadOnStart() && len(sources) > 0 {
		loadCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
		if _, err := corpusSvc.Reload(loadCtx); err != nil {
			// Serving an empty corpus is valid; a later reload can recover.
			logger.Error("Initial corpus load failed", zap.Error(err))
		}
		cancel()
	}

	healthSvc := healthuc.New(dbPinger, holder)

	server := chiTransport.NewServer(searchSvc, corpusSvc, healthSvc, chiTransport.ServerConfig{
		DefaultPageSize: cfg.Search.DefaultPageSize,
		MaxPageSize:     cfg.Search.MaxPageSize,
		MaxBodyBytes:    cfg.HTTP.MaxBodyBytes,
	}, logger)
	router := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		APIKeys:   cfg.Auth.APIKeys,
		RateRPS:   cfg.HTTP.RateLimit.RPS,
		RateBurst: cfg.HTTP.RateLimit.Burst,
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/api"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/cache"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/catalog"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/config"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/logger"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/metrics"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/service"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/wikipedia"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	log = log.With(logger.String("service", cfg.Service.Name))

	log.Info("Starting clubs catalog service",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	store, err := catalog.Load(cfg.Catalog.DataPath)
	if err != nil {
		log.Error("Failed to load club catalog", logger.Error(err))
		return 1
	}
	log.Info("Club catalog loaded",
		logger.String("path", cfg.Catalog.DataPath),
		logger.Int("clubs", store.Len()),
	)

	summaryCache, err := newSummaryCache(cfg, log)
	if err != nil {
		log.Error("Failed to create summary cache", logger.Error(err))
		return 1
	}

	m := metrics.New()

	wiki := wikipedia.NewClient(summaryCache, log, wikipedia.Options{
		BaseURL:     cfg.Wikipedia.BaseURL,
		Timeout:     cfg.Wikipedia.Timeout,
		CacheTTL:    cfg.Wikipedia.CacheTTL,
		CacheHits:   m.CacheHits,
		CacheMisses: m.CacheMisses,
	})

	clubService := service.NewClubService(store, wiki, log)
	handler := api.NewHandler(clubService, cfg, log)
	server := api.NewServer(cfg, handler, m, log)

	if runErr := server.Run(context.Background()); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return 1
	}

	log.Info("Clubs catalog service exited cleanly")
	return 0
}

// newSummaryCache builds the configured cache backend. Memory is the
// default; Redis is opt-in for deployments that want warm caches across
// restarts.
func newSummaryCache(cfg *config.Config, log logger.Logger) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		log.Info("Using Redis summary cache",
			logger.String("address", cfg.Cache.Redis.Address),
		)
		return cache.NewRedis(cache.RedisOptions{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	default:
		return cache.NewMemory(cache.WithMaxEntries(cfg.Cache.MaxEntries)), nil
	}
}

package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/senmay/Geo-Asystent-AI/internal/api"
	"github.com/senmay/Geo-Asystent-AI/internal/config"
	"github.com/senmay/Geo-Asystent-AI/internal/llm"
	"github.com/senmay/Geo-Asystent-AI/internal/redis"
	"github.com/senmay/Geo-Asystent-AI/internal/registry"
	"github.com/senmay/Geo-Asystent-AI/internal/service"
	"github.com/senmay/Geo-Asystent-AI/internal/storage/postgres"
	"github.com/senmay/Geo-Asystent-AI/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Registry   *registry.Registry
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Loading layer configurations")
	layerConfigs, err := storage.LayerStore.LoadAll(ctx)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to load layer configs: %w", err)
	}

	// probe reduced-resolution tables once; the result is immutable at runtime
	lowResExists := make(map[string]bool, len(layerConfigs))
	for name, lc := range layerConfigs {
		if !lc.HasLowRes {
			continue
		}
		exists, err := storage.LayerStore.TableExists(ctx, lc.LowResTableName())
		if err != nil {
			logger.Warn("low-res table probe failed",
				slog.String("layer", name),
				slog.Any("error", err),
			)
			continue
		}
		lowResExists[name] = exists
	}

	reg := registry.New(layerConfigs, lowResExists)
	logger.Info("Layer registry ready", slog.Int("layers", len(layerConfigs)))

	var (
		redisClient *redis.Redis
		layerCache  service.LayerGeoJSONCache
	)
	if cfg.Redis.Disabled {
		logger.Info("Redis disabled, layer cache off")
	} else {
		logger.Info("Initializing Redis")
		redisClient, err = redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			storage.Pool.Close()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		layerCache = redis.NewLayerCache(redisClient, cfg.Redis.CacheTTL)
	}

	llmClient := llm.NewClient(cfg.LLM)
	classifier := llm.NewClassifier(llmClient, logger)
	chatSvc := llm.NewChatService(llmClient, logger)

	gisSvc := service.NewGISService(reg, storage.GIS, layerCache, logger, cfg.GIS.MaxDisplay)
	dispatcher := service.NewDispatcher(classifier, gisSvc, chatSvc, logger)

	srv := service.NewService(gisSvc, dispatcher)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Registry:   reg,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

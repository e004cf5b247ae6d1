package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"educafric/internal/api"
	"educafric/internal/config"
	"educafric/internal/redis"
	"educafric/internal/service"
	"educafric/internal/storage/postgres"
	"educafric/internal/workers"
	"educafric/pkg/logger"
)

type Components struct {
	logger       *slog.Logger
	HttpServer   *api.Server
	Postgres     *postgres.Postgres
	Redis        *redis.Redis
	Notifier     *service.NotificationSender
	CacheRefresh *workers.ZoneCacheRefresher
	NotifyQ      *redis.NotifyQueue
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

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	notifyQueue := redis.NewNotifyQueue(redisClient.Client, "notifications:queue")
	zoneCache := redis.NewZoneCache(redisClient)
	membership := redis.NewMembershipCache(redisClient)

	zoneAdminSvc := service.NewZoneAdminService(storage.SafeZones, zoneCache, logger)
	trackingSvc := service.NewTrackingService(
		storage.SafeZones,
		zoneCache,
		membership,
		storage.Alerts,
		storage.Checks,
		storage.Users,
		notifyQueue,
		logger,
		cfg.Geofence.SpeedLimitKMH,
		cfg.Geofence.ZoneCacheTTL,
		nil,
	)
	emergencySvc := service.NewEmergencyService(storage.Emergencies, storage.Users, notifyQueue, logger, nil)
	statsSvc := service.NewStatsService(storage.Checks, storage.Alerts)

	srv := service.NewService(zoneAdminSvc, trackingSvc, emergencySvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	notifier := service.NewNotificationSender(logger, cfg.Notify, notifyQueue)
	cacheRefresh := workers.NewZoneCacheRefresher(
		storage.SafeZones,
		zoneCache,
		logger,
		cfg.Geofence.RefreshInterval,
		cfg.Geofence.ZoneCacheTTL,
		4,
	)

	return &Components{
		logger:       logger,
		HttpServer:   httpServer,
		Postgres:     storage,
		Redis:        redisClient,
		Notifier:     notifier,
		CacheRefresh: cacheRefresh,
		NotifyQ:      notifyQueue,
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
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}

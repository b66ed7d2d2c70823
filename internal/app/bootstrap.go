package app

import (
	"statsbot/internal/app/activity"
	"statsbot/internal/app/health"
	"statsbot/internal/config"
	"statsbot/internal/db"
	"statsbot/internal/gateways/discord"
	"statsbot/internal/gateways/websocket"
	"statsbot/internal/providers/redis"
	"statsbot/internal/router"
	"statsbot/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router  *router.Router
	DB      *gorm.DB
	Gateway *discord.Gateway
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Serving without a verified schema risks silent write failures later,
	// so a bootstrap error here aborts startup.
	if err := db.EnsureSchema(dbConn, cfg.DBSchema, logger); err != nil {
		return nil, err
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()

	activityRepo := activity.NewRepository(dbConn)
	activityService := activity.NewService(activityRepo, redisProvider, eventBus, logger)
	activityHandler := activity.NewHandler(activityService)

	hub := websocket.NewHub(logger, eventBus)
	go hub.Run()

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})

	r := router.NewRouter(logger)
	r.RegisterHealthRoutes(healthHandler)
	r.RegisterActivityRoutes(activityHandler)
	r.RegisterWebSocketRoutes(hub)

	var gateway *discord.Gateway
	if cfg.DiscordToken != "" {
		gateway, err = discord.NewGateway(cfg.DiscordToken, activityService, logger, cfg.LeaderboardLimit)
		if err != nil {
			return nil, err
		}
		if err := gateway.Start(); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("DISCORD_TOKEN not set, running without the Discord gateway")
	}

	return &Application{
		Router:  r,
		DB:      dbConn,
		Gateway: gateway,
	}, nil
}

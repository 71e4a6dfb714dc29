package di

import (
	"context"
	"fmt"

	"eating-helper/api"
	"eating-helper/api/eatinghelper"
	"eating-helper/config"
	"eating-helper/dao/redis"
	"eating-helper/db"
	"eating-helper/server"
	"eating-helper/server/handlers"
	services "eating-helper/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Config                    *config.Config
	Logger                    *zap.Logger
	RedisClient               db.RedisClient
	RedisNutritionDao         *redis.RedisNutritionDAO
	EatingHelperAPI           eatinghelper.EatingHelperAPI
	NutritionSource           *services.NutritionSource
	DashboardService          *services.DashboardService
	NutritionRefresherService *services.NutritionRefresherService
	DashboardHandler          *handlers.DashboardHandler
	MuxRouter                 *mux.Router
	Router                    *server.Router
	EatingHelperHttpServer    *server.EatingHelperHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	logger.Info("initializing container", zap.String("env", cfg.Environment))

	c := &Container{Config: cfg, Logger: logger}

	// Initialize Redis client, if configured
	if cfg.CacheEnabled() {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient := db.NewGoRedisClient(redisInternalClient)
		if err := redisClient.Ping(ctx); err != nil {
			redisClient.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
		c.RedisClient = redisClient
	} else {
		logger.Info("redis not configured, using in-memory cache")
		c.RedisClient = db.NewMockRedisClient()
	}

	c.RedisNutritionDao = redis.NewRedisNutritionDAO(c.RedisClient, cfg.CacheTTL)

	// Initialize EatingHelperAPI
	if cfg.IsProd() {
		logger.Info("using prod eating helper api", zap.String("base_url", cfg.APIBaseURL))
		httpClient := api.NewHTTPClientWithTimeout(cfg.APIBaseURL, cfg.APITimeout)
		c.EatingHelperAPI = eatinghelper.NewEatingHelperApiClient(httpClient)
	} else {
		logger.Info("using mock eating helper api",
			zap.String("weekly_nutrition", cfg.WeeklyNutritionFixture),
			zap.String("recipes", cfg.RecipesFixture),
		)
		c.EatingHelperAPI = eatinghelper.NewEatingHelperApiClientMock(cfg.WeeklyNutritionFixture, cfg.RecipesFixture)
	}

	c.NutritionSource = services.NewNutritionSource(c.EatingHelperAPI, c.RedisNutritionDao, logger)
	c.DashboardService = services.NewDashboardService(c.NutritionSource, logger)
	c.NutritionRefresherService = services.NewNutritionRefresherService(c.EatingHelperAPI, c.RedisNutritionDao, logger)

	c.DashboardHandler = handlers.NewDashboardHandler(c.DashboardService, logger)
	c.MuxRouter = mux.NewRouter()
	c.Router = server.NewRouter(c.DashboardHandler, c.MuxRouter, logger)
	c.EatingHelperHttpServer = server.NewEatingHelperHttpServer(c.Router, c.MuxRouter, cfg.ListenAddr, logger)

	return c, nil
}

// Close releases the Redis connection.
func (c *Container) Close() error {
	return c.RedisClient.Close()
}

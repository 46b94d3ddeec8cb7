package app

import (
	"os"

	"go-salon/internal/middleware"
	"go-salon/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		logger.Warn("redis unavailable, idempotency disabled", zap.Error(err))
		redisClient = nil
	} else {
		logger.Info("redis connection established")
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	return registerModules(router, sqlDB, gormDB, redisClient)
}

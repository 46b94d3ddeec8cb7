package main

import (
	"go-salon/internal/app"
	"go-salon/internal/bootstrap"
	"go-salon/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The worker drains the transactional outbox into Kafka. It shares the
// module wiring with the API but serves no HTTP.
func main() {
	_ = godotenv.Load()
	logger, err := bootstrap.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunWorker(); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}

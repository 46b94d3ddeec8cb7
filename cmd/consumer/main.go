package main

import (
	"go-salon/internal/app"
	"go-salon/internal/bootstrap"
	"go-salon/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The consumer turns payslip.requested events into stored PDF documents so
// the API never renders one inline.
func main() {
	_ = godotenv.Load()
	logger, err := bootstrap.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunConsumer(); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}

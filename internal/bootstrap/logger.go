package bootstrap

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger picks the zap preset from APP_ENV: readable console output for
// local runs, JSON for deployments.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

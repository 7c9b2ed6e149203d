package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lexia/internal/config"
	"lexia/pkg/logger"
	"lexia/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideLogger, provideTokenManager)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger() *zap.SugaredLogger {
	return logger.NewLogger()
}

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret)
}

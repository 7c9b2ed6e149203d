package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lexia/internal/config"
	"lexia/internal/repositories"
	"lexia/internal/services"
	"lexia/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, tokens *utils.TokenManager, cfg *config.Config, logger *zap.SugaredLogger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, tokens, cfg, logger)
}

package process_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lexia/internal/repositories"
	"lexia/internal/services"
	"lexia/pkg/utils"
)

var Module = fx.Provide(
	provideProcessService, provideProcessRepo)

func provideProcessRepo(db *gorm.DB) repositories.ProcessRepository {
	return repositories.NewProcessRepository(db)
}

func provideProcessService(
	processRepo repositories.ProcessRepository,
	userRepo repositories.UserRepository,
	generator utils.TextGeneratorInterface,
	constitute services.ConstituteServiceInterface,
	logger *zap.SugaredLogger,
) services.ProcessServiceInterface {
	return services.NewProcessService(processRepo, userRepo, generator, constitute, logger)
}

package consultation_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lexia/internal/repositories"
	"lexia/internal/services"
	"lexia/pkg/utils"
)

var Module = fx.Provide(
	provideConsultationService, provideConsultationRepo)

func provideConsultationRepo(db *gorm.DB) repositories.ConsultationRepository {
	return repositories.NewConsultationRepository(db)
}

func provideConsultationService(
	consultationRepo repositories.ConsultationRepository,
	generator utils.TextGeneratorInterface,
	constitute services.ConstituteServiceInterface,
	logger *zap.SugaredLogger,
) services.ConsultationServiceInterface {
	return services.NewConsultationService(consultationRepo, generator, constitute, logger)
}

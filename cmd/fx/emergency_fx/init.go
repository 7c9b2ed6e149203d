package emergency_fx

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
	provideEmergencyService, provideAlertRepo)

func provideAlertRepo(db *gorm.DB) repositories.AlertRepository {
	return repositories.NewAlertRepository(db)
}

func provideEmergencyService(
	userRepo repositories.UserRepository,
	contactRepo repositories.ContactRepository,
	alertRepo repositories.AlertRepository,
	generator utils.TextGeneratorInterface,
	whatsapp services.WhatsAppServiceInterface,
	mail services.MailServiceInterface,
	voice services.VoiceServiceInterface,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) services.EmergencyServiceInterface {
	return services.NewEmergencyService(userRepo, contactRepo, alertRepo, generator, whatsapp, mail, voice, cfg, logger)
}

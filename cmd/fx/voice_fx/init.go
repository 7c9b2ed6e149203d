package voice_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lexia/internal/config"
	"lexia/internal/repositories"
	"lexia/internal/services"
)

var Module = fx.Provide(
	provideVoiceService, provideVoiceRepo)

func provideVoiceRepo(db *gorm.DB) repositories.VoiceRepository {
	return repositories.NewVoiceRepository(db)
}

func provideVoiceService(voiceRepo repositories.VoiceRepository, cfg *config.Config) services.VoiceServiceInterface {
	return services.NewVoiceService(voiceRepo, cfg)
}

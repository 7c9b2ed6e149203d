package notify_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lexia/internal/config"
	"lexia/internal/services"
)

var Module = fx.Provide(
	provideWhatsAppService, provideMailService, provideConstituteService)

func provideWhatsAppService(cfg *config.Config, logger *zap.SugaredLogger) services.WhatsAppServiceInterface {
	return services.NewWhatsAppService(cfg, logger)
}

func provideMailService(cfg *config.Config) services.MailServiceInterface {
	return services.NewSMTPMailService(cfg)
}

func provideConstituteService(cfg *config.Config, logger *zap.SugaredLogger) services.ConstituteServiceInterface {
	return services.NewConstituteService(cfg, logger)
}

package document_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lexia/internal/repositories"
	"lexia/internal/services"
	"lexia/pkg/utils"
)

var Module = fx.Provide(provideDocumentService)

func provideDocumentService(
	processRepo repositories.ProcessRepository,
	userRepo repositories.UserRepository,
	generator utils.TextGeneratorInterface,
	constitute services.ConstituteServiceInterface,
	renderer utils.PDFRendererInterface,
	logger *zap.SugaredLogger,
) services.DocumentServiceInterface {
	return services.NewDocumentService(processRepo, userRepo, generator, constitute, renderer, logger)
}

package ai_fx

import (
	"go.uber.org/fx"

	"lexia/internal/config"
	"lexia/pkg/utils"
)

var Module = fx.Provide(
	provideTextGenerator, providePDFRenderer)

func provideTextGenerator(cfg *config.Config) (utils.TextGeneratorInterface, error) {
	apiKey := cfg.GeminiAPIKey
	if cfg.AIProvider == "openai" {
		apiKey = cfg.OpenAIAPIKey
	}
	return utils.NewTextGenerator(cfg.AIProvider, apiKey, cfg.AIModel)
}

func providePDFRenderer() utils.PDFRendererInterface {
	return utils.NewChromePDFRenderer()
}

package controllers_fx

import (
	"go.uber.org/fx"

	"lexia/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewContactController),
	fx.Provide(controllers.NewProcessController),
	fx.Provide(controllers.NewConsultationController),
	fx.Provide(controllers.NewEmergencyController),
	fx.Provide(controllers.NewVoiceController))

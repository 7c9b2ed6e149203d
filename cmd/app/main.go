package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lexia/cmd/fx/account_fx"
	"lexia/cmd/fx/ai_fx"
	"lexia/cmd/fx/config_fx"
	"lexia/cmd/fx/consultation_fx"
	"lexia/cmd/fx/contact_fx"
	"lexia/cmd/fx/controllers_fx"
	"lexia/cmd/fx/db_fx"
	"lexia/cmd/fx/document_fx"
	"lexia/cmd/fx/emergency_fx"
	"lexia/cmd/fx/notify_fx"
	"lexia/cmd/fx/process_fx"
	"lexia/cmd/fx/voice_fx"
	"lexia/internal/api/controllers"
	"lexia/internal/config"
	"lexia/pkg/middleware"
	"lexia/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		ai_fx.Module,
		notify_fx.Module,
		account_fx.Module,
		contact_fx.Module,
		process_fx.Module,
		consultation_fx.Module,
		voice_fx.Module,
		emergency_fx.Module,
		document_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.SugaredLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Infow("starting HTTP server", "port", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	contactController *controllers.ContactController,
	processController *controllers.ProcessController,
	consultationController *controllers.ConsultationController,
	emergencyController *controllers.EmergencyController,
	voiceController *controllers.VoiceController,
	tokens *utils.TokenManager,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, contactController, processController,
		consultationController, emergencyController, voiceController, tokens)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	contactController *controllers.ContactController,
	processController *controllers.ProcessController,
	consultationController *controllers.ConsultationController,
	emergencyController *controllers.EmergencyController,
	voiceController *controllers.VoiceController,
	tokens *utils.TokenManager) {

	authRequired := middleware.JWTAuthMiddleware(tokens)

	auth := r.Group("/api/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.GET("/google/url", accountController.GoogleAuthURL)
	auth.POST("/google", accountController.GoogleCallback)
	auth.GET("/me", authRequired, accountController.Profile)

	r.PUT("/api/profile", authRequired, accountController.UpdateProfile)

	r.POST("/api/ask", authRequired, consultationController.Ask)
	r.GET("/api/consultations", authRequired, consultationController.History)

	processes := r.Group("/api/processes", authRequired)
	processes.POST("", processController.Create)
	processes.GET("", processController.List)
	processes.GET("/:id", processController.Get)
	processes.PATCH("/:id", processController.Update)
	processes.POST("/:id/steps/:stepId/toggle", processController.ToggleStep)
	processes.POST("/:id/generate-document", processController.GenerateDocument)

	contacts := r.Group("/api/emergency-contacts", authRequired)
	contacts.GET("", contactController.List)
	contacts.POST("", contactController.Create)
	contacts.PUT("/:id", contactController.Update)
	contacts.DELETE("/:id", contactController.Delete)

	emergency := r.Group("/api/emergency", authRequired)
	emergency.POST("", emergencyController.Activate)
	emergency.POST("/with-voice", emergencyController.ActivateWithVoice)

	voice := r.Group("/api/voice")
	voice.POST("/upload", authRequired, voiceController.Upload)
	// Twilio fetches the media URL sent in WhatsApp messages without any auth
	// header, so playback cannot sit behind the JWT middleware. Access is gated
	// by the signed, expiring URL the voice service hands out instead.
	voice.GET("/:id", voiceController.Get)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"lexia/internal/config"
	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
)

type WhatsAppServiceInterface interface {
	SendEmergencyAlert(ctx context.Context, contacts []db_models.EmergencyContact, message string, location request_models.Location, voiceNoteURL string) []ChannelResult
}

type whatsAppService struct {
	client *twilio.RestClient
	from   string
	logger *zap.SugaredLogger
}

func NewWhatsAppService(cfg *config.Config, logger *zap.SugaredLogger) WhatsAppServiceInterface {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &whatsAppService{
		client: client,
		from:   cfg.TwilioWhatsAppFrom,
		logger: logger,
	}
}

// SendEmergencyAlert messages every contact once, in order. A send failure is
// recorded against that contact and the batch keeps going. A cancelled context
// stops the batch and marks the remaining contacts as failed.
func (s *whatsAppService) SendEmergencyAlert(ctx context.Context, contacts []db_models.EmergencyContact, message string, location request_models.Location, voiceNoteURL string) []ChannelResult {
	body := fmt.Sprintf("%s\n\n📍 https://maps.google.com/?q=%f,%f",
		message, location.Latitude, location.Longitude)

	results := make([]ChannelResult, 0, len(contacts))
	for _, contact := range contacts {
		result := ChannelResult{Name: contact.Name, Phone: contact.Phone}

		if err := ctx.Err(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		params := &openapi.CreateMessageParams{}
		params.SetFrom(whatsAppAddress(s.from))
		params.SetTo(whatsAppAddress(contact.Phone))
		params.SetBody(body)
		if voiceNoteURL != "" {
			params.SetMediaUrl([]string{voiceNoteURL})
		}

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			s.logger.Errorw("whatsapp send failed", "to", contact.Phone, "error", err)
			result.Error = err.Error()
		} else {
			result.Success = true
		}
		results = append(results, result)
	}
	return results
}

func whatsAppAddress(phone string) string {
	if strings.HasPrefix(phone, "whatsapp:") {
		return phone
	}
	return "whatsapp:" + phone
}

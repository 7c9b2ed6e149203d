package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"lexia/internal/config"
	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
	"lexia/internal/models/response_models"
	"lexia/internal/repositories"
	"lexia/pkg/utils"
)

type EmergencyServiceInterface interface {
	ActivateAlert(ctx context.Context, userID string, location request_models.Location, voiceRecording *db_models.VoiceRecording) (*response_models.AlertReport, error)
}

type EmergencyService struct {
	userRepo    repositories.UserRepository
	contactRepo repositories.ContactRepository
	alertRepo   repositories.AlertRepository
	generator   utils.TextGeneratorInterface
	whatsapp    WhatsAppServiceInterface
	mail        MailServiceInterface
	voice       VoiceServiceInterface
	appBaseURL  string
	logger      *zap.SugaredLogger
}

func NewEmergencyService(
	userRepo repositories.UserRepository,
	contactRepo repositories.ContactRepository,
	alertRepo repositories.AlertRepository,
	generator utils.TextGeneratorInterface,
	whatsapp WhatsAppServiceInterface,
	mail MailServiceInterface,
	voice VoiceServiceInterface,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) EmergencyServiceInterface {
	return &EmergencyService{
		userRepo:    userRepo,
		contactRepo: contactRepo,
		alertRepo:   alertRepo,
		generator:   generator,
		whatsapp:    whatsapp,
		mail:        mail,
		voice:       voice,
		appBaseURL:  strings.TrimSuffix(cfg.AppBaseURL, "/"),
		logger:      logger,
	}
}

// ActivateAlert fans one alert out to every reachable channel and records
// what happened. Channel failures are recorded per contact, never fatal; only
// a missing user or a failed alert write aborts the request. Activation is
// deliberately not idempotent: calling it twice sends twice.
func (s *EmergencyService) ActivateAlert(ctx context.Context, userID string, location request_models.Location, voiceRecording *db_models.VoiceRecording) (*response_models.AlertReport, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	contacts, err := s.contactRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	message, err := s.generator.GenerateEmergencyMessage(ctx, utils.EmergencyMessageRequest{
		UserName: user.Name,
		Language: defaultString(user.Language, "es"),
		Location: location,
	})
	if err != nil {
		// The alert must go out even when the model is down
		s.logger.Warnw("emergency message generation failed, using template", "error", err)
		message = utils.FallbackEmergencyMessage(utils.EmergencyMessageRequest{
			UserName: user.Name,
			Language: defaultString(user.Language, "es"),
			Location: location,
		})
	}

	var whatsappContacts []db_models.EmergencyContact
	for _, contact := range contacts {
		if contact.WhatsappEnabled {
			whatsappContacts = append(whatsappContacts, contact)
		}
	}
	var emailContacts []db_models.EmergencyContact
	for _, contact := range contacts {
		if strings.Contains(contact.Phone, "@") {
			emailContacts = append(emailContacts, contact)
		}
	}

	voiceNoteURL := ""
	var attachment *VoiceAttachment
	if voiceRecording != nil {
		voiceNoteURL = s.appBaseURL + s.voice.RecordingURL(voiceRecording.ID)
		attachment = &VoiceAttachment{
			Filename: voiceRecording.Filename,
			Content:  voiceRecording.Data,
		}
	}

	// The two channels are independent; dispatch them concurrently
	var wg sync.WaitGroup
	var whatsappResults, emailResults []ChannelResult

	wg.Add(1)
	go func() {
		defer wg.Done()
		whatsappResults = s.whatsapp.SendEmergencyAlert(ctx, whatsappContacts, message, location, voiceNoteURL)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, contact := range emailContacts {
			result := ChannelResult{Name: contact.Name, Phone: contact.Phone}
			if err := s.mail.SendEmergencyEmail(ctx, contact.Phone, user.Name, message, location, attachment); err != nil {
				s.logger.Errorw("emergency email failed", "to", contact.Phone, "error", err)
				result.Error = err.Error()
			} else {
				result.Success = true
			}
			emailResults = append(emailResults, result)
		}
	}()

	wg.Wait()

	// One outcome entry per dispatch attempt; a contact hit on both
	// channels shows up twice
	outcomes := make([]db_models.ContactOutcome, 0, len(whatsappResults)+len(emailResults))
	for _, result := range append(whatsappResults, emailResults...) {
		status := db_models.AlertStatusFailed
		if result.Success {
			status = db_models.AlertStatusSent
		}
		outcomes = append(outcomes, db_models.ContactOutcome{
			ID:     uuid.New().String(),
			Name:   result.Name,
			Phone:  result.Phone,
			Status: status,
			SentAt: time.Now().UTC(),
			Error:  result.Error,
		})
	}

	status := db_models.AlertStatusFailed
	for _, outcome := range outcomes {
		if outcome.Status == db_models.AlertStatusSent {
			status = db_models.AlertStatusSent
			break
		}
	}

	alert := &db_models.EmergencyAlert{
		UserID:           user.ID,
		Latitude:         location.Latitude,
		Longitude:        location.Longitude,
		Address:          location.Address,
		ContactsNotified: datatypes.NewJSONType(outcomes),
		Status:           status,
	}
	if voiceRecording != nil {
		alert.VoiceRecordingID = &voiceRecording.ID
	}
	if err := s.alertRepo.Insert(ctx, alert); err != nil {
		return nil, utils.ErrDatabaseError
	}

	report := &response_models.AlertReport{
		Status:           status,
		ContactsNotified: outcomes,
		Location:         location,
		Message:          message,
	}
	if voiceRecording != nil {
		report.VoiceRecording = &response_models.VoiceRecordingRef{
			ID:  voiceRecording.ID.String(),
			URL: s.voice.RecordingURL(voiceRecording.ID),
		}
	}
	return report, nil
}

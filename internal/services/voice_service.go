package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"lexia/internal/config"
	"lexia/internal/models/db_models"
	"lexia/internal/repositories"
	"lexia/pkg/utils"
)

// Playback links outlive the alert that produced them long enough for a
// contact to listen later, then expire.
const recordingURLTTL = 7 * 24 * time.Hour

type VoiceServiceInterface interface {
	SaveRecording(ctx context.Context, userID string, audio []byte, originalName, kind string) (*db_models.VoiceRecording, error)
	GetRecording(ctx context.Context, id string) (*db_models.VoiceRecording, error)
	RecordingURL(id uuid.UUID) string
	VerifyRecordingAccess(id, exp, sig string) error
}

type VoiceService struct {
	voiceRepo  repositories.VoiceRepository
	signingKey []byte
}

func NewVoiceService(voiceRepo repositories.VoiceRepository, cfg *config.Config) VoiceServiceInterface {
	return &VoiceService{
		voiceRepo:  voiceRepo,
		signingKey: []byte(cfg.JWTSecret),
	}
}

func (s *VoiceService) SaveRecording(ctx context.Context, userID string, audio []byte, originalName, kind string) (*db_models.VoiceRecording, error) {
	if len(audio) == 0 {
		return nil, utils.ErrValidation
	}
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	if kind == "" {
		kind = "emergency"
	}

	recording := &db_models.VoiceRecording{
		UserID:      ownerID,
		Filename:    originalName,
		Kind:        kind,
		ContentType: http.DetectContentType(audio),
		Data:        audio,
	}
	if err := s.voiceRepo.Insert(ctx, recording); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return recording, nil
}

func (s *VoiceService) GetRecording(ctx context.Context, id string) (*db_models.VoiceRecording, error) {
	recording, err := s.voiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if recording == nil {
		return nil, utils.ErrRecordingNotFound
	}
	return recording, nil
}

// RecordingURL returns a signed, expiring playback path. Recordings are served
// on an unauthenticated route because Twilio fetches media URLs without
// credentials, so the signature is the only gate on the recording.
func (s *VoiceService) RecordingURL(id uuid.UUID) string {
	exp := strconv.FormatInt(time.Now().Add(recordingURLTTL).Unix(), 10)
	return fmt.Sprintf("/api/voice/%s?exp=%s&sig=%s", id, exp, s.sign(id.String(), exp))
}

// VerifyRecordingAccess checks the exp/sig pair handed out by RecordingURL.
func (s *VoiceService) VerifyRecordingAccess(id, exp, sig string) error {
	expiresAt, err := strconv.ParseInt(exp, 10, 64)
	if err != nil || time.Now().Unix() > expiresAt {
		return utils.ErrRecordingLinkInvalid
	}
	if !hmac.Equal([]byte(s.sign(id, exp)), []byte(sig)) {
		return utils.ErrRecordingLinkInvalid
	}
	return nil
}

func (s *VoiceService) sign(id, exp string) string {
	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write([]byte(id + ":" + exp))
	return hex.EncodeToString(mac.Sum(nil))
}

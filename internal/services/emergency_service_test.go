package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lexia/internal/config"
	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
)

type emergencyFixture struct {
	svc       EmergencyServiceInterface
	user      *db_models.User
	alertRepo *fakeAlertRepo
	whatsapp  *fakeWhatsApp
	mail      *fakeMail
	generator *fakeGenerator
}

func newEmergencyFixture(t *testing.T, contacts []db_models.EmergencyContact) *emergencyFixture {
	t.Helper()
	user := testUser()
	for i := range contacts {
		contacts[i].UserID = user.ID
		if contacts[i].ID == uuid.Nil {
			contacts[i].ID = uuid.New()
		}
	}

	alertRepo := &fakeAlertRepo{}
	whatsapp := &fakeWhatsApp{failFor: map[string]bool{}}
	mail := &fakeMail{}
	generator := &fakeGenerator{message: "Emergencia: Maria necesita ayuda"}

	svc := NewEmergencyService(
		newFakeUserRepo(user),
		&fakeContactRepo{contacts: contacts},
		alertRepo,
		generator,
		whatsapp,
		mail,
		NewVoiceService(&fakeVoiceRepo{}, &config.Config{JWTSecret: "test-secret"}),
		&config.Config{AppBaseURL: "https://lexia.example.com"},
		zap.NewNop().Sugar(),
	)

	return &emergencyFixture{
		svc:       svc,
		user:      user,
		alertRepo: alertRepo,
		whatsapp:  whatsapp,
		mail:      mail,
		generator: generator,
	}
}

var testLocation = request_models.Location{
	Latitude:  -0.1807,
	Longitude: -78.4678,
	Address:   "Quito, Ecuador",
}

func TestActivateAlertOneOutcomePerDispatchAttempt(t *testing.T) {
	fx := newEmergencyFixture(t, []db_models.EmergencyContact{
		{Name: "Ana", Phone: "+593991234567", WhatsappEnabled: true},
		{Name: "Luis", Phone: "luis@example.com"},
		// reachable on both channels: counted twice
		{Name: "Sofia", Phone: "sofia@example.com", WhatsappEnabled: true},
	})

	report, err := fx.svc.ActivateAlert(context.Background(), fx.user.ID.String(), testLocation, nil)
	require.NoError(t, err)

	// 2 whatsapp attempts + 2 email attempts
	assert.Len(t, report.ContactsNotified, 4)
	assert.Equal(t, db_models.AlertStatusSent, report.Status)
	assert.Equal(t, "Emergencia: Maria necesita ayuda", report.Message)

	for _, outcome := range report.ContactsNotified {
		assert.NotEmpty(t, outcome.ID)
		assert.False(t, outcome.SentAt.IsZero())
	}
}

func TestActivateAlertStatusSentNeedsOneSuccess(t *testing.T) {
	fx := newEmergencyFixture(t, []db_models.EmergencyContact{
		{Name: "Ana", Phone: "+593991234567", WhatsappEnabled: true},
		{Name: "Luis", Phone: "luis@example.com"},
	})
	fx.whatsapp.failFor["+593991234567"] = true

	report, err := fx.svc.ActivateAlert(context.Background(), fx.user.ID.String(), testLocation, nil)
	require.NoError(t, err)
	assert.Equal(t, db_models.AlertStatusSent, report.Status)

	sent, failed := 0, 0
	for _, outcome := range report.ContactsNotified {
		switch outcome.Status {
		case db_models.AlertStatusSent:
			sent++
		case db_models.AlertStatusFailed:
			failed++
		}
	}
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, failed)
}

func TestActivateAlertAllChannelsDown(t *testing.T) {
	fx := newEmergencyFixture(t, []db_models.EmergencyContact{
		{Name: "Ana", Phone: "+593991234567", WhatsappEnabled: true},
		{Name: "Luis", Phone: "luis@example.com"},
	})
	fx.whatsapp.failFor["+593991234567"] = true
	fx.mail.failAll = true

	report, err := fx.svc.ActivateAlert(context.Background(), fx.user.ID.String(), testLocation, nil)
	require.NoError(t, err)
	assert.Equal(t, db_models.AlertStatusFailed, report.Status)
	for _, outcome := range report.ContactsNotified {
		assert.NotEmpty(t, outcome.Error)
	}
}

func TestActivateAlertIsNotIdempotent(t *testing.T) {
	fx := newEmergencyFixture(t, []db_models.EmergencyContact{
		{Name: "Ana", Phone: "+593991234567", WhatsappEnabled: true},
	})

	_, err := fx.svc.ActivateAlert(context.Background(), fx.user.ID.String(), testLocation, nil)
	require.NoError(t, err)
	_, err = fx.svc.ActivateAlert(context.Background(), fx.user.ID.String(), testLocation, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, fx.whatsapp.calls)
	alerts, err := fx.alertRepo.ListByUser(context.Background(), fx.user.ID.String())
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestActivateAlertFallsBackWhenGenerationFails(t *testing.T) {
	fx := newEmergencyFixture(t, []db_models.EmergencyContact{
		{Name: "Ana", Phone: "+593991234567", WhatsappEnabled: true},
	})
	fx.generator.messageErr = assert.AnError

	report, err := fx.svc.ActivateAlert(context.Background(), fx.user.ID.String(), testLocation, nil)
	require.NoError(t, err)
	assert.Contains(t, report.Message, fx.user.Name)
	assert.Equal(t, db_models.AlertStatusSent, report.Status)
}

func TestActivateAlertPersistsBeforeReturning(t *testing.T) {
	fx := newEmergencyFixture(t, []db_models.EmergencyContact{
		{Name: "Luis", Phone: "luis@example.com"},
	})

	report, err := fx.svc.ActivateAlert(context.Background(), fx.user.ID.String(), testLocation, nil)
	require.NoError(t, err)

	alerts, err := fx.alertRepo.ListByUser(context.Background(), fx.user.ID.String())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, report.Status, alerts[0].Status)
	assert.Equal(t, testLocation.Latitude, alerts[0].Latitude)
	assert.Len(t, alerts[0].ContactsNotified.Data(), len(report.ContactsNotified))
}

func TestActivateAlertWithVoiceRecording(t *testing.T) {
	fx := newEmergencyFixture(t, []db_models.EmergencyContact{
		{Name: "Ana", Phone: "+593991234567", WhatsappEnabled: true},
	})

	recording := &db_models.VoiceRecording{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    fx.user.ID,
		Filename:  "sos.mp3",
		Data:      []byte("audio-bytes"),
	}

	report, err := fx.svc.ActivateAlert(context.Background(), fx.user.ID.String(), testLocation, recording)
	require.NoError(t, err)
	require.NotNil(t, report.VoiceRecording)
	assert.Equal(t, recording.ID.String(), report.VoiceRecording.ID)
	assert.Contains(t, report.VoiceRecording.URL, recording.ID.String())
	assert.Contains(t, report.VoiceRecording.URL, "sig=")

	alerts, err := fx.alertRepo.ListByUser(context.Background(), fx.user.ID.String())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.NotNil(t, alerts[0].VoiceRecordingID)
	assert.Equal(t, recording.ID, *alerts[0].VoiceRecordingID)
}

package services

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexia/internal/config"
	"lexia/pkg/utils"
)

func newVoiceServiceForTest() VoiceServiceInterface {
	return NewVoiceService(&fakeVoiceRepo{}, &config.Config{JWTSecret: "test-secret"})
}

func TestRecordingURLVerifies(t *testing.T) {
	svc := newVoiceServiceForTest()
	id := uuid.New()

	raw := svc.RecordingURL(id)
	assert.True(t, strings.HasPrefix(raw, "/api/voice/"+id.String()))

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	query := parsed.Query()

	err = svc.VerifyRecordingAccess(id.String(), query.Get("exp"), query.Get("sig"))
	assert.NoError(t, err)
}

func TestVerifyRecordingAccessRejectsTampering(t *testing.T) {
	svc := newVoiceServiceForTest()
	id := uuid.New()

	parsed, err := url.Parse(svc.RecordingURL(id))
	require.NoError(t, err)
	query := parsed.Query()

	// wrong signature
	err = svc.VerifyRecordingAccess(id.String(), query.Get("exp"), query.Get("sig")+"00")
	assert.ErrorIs(t, err, utils.ErrRecordingLinkInvalid)

	// signature replayed against a different recording
	err = svc.VerifyRecordingAccess(uuid.NewString(), query.Get("exp"), query.Get("sig"))
	assert.ErrorIs(t, err, utils.ErrRecordingLinkInvalid)

	// signed with a different key
	other := NewVoiceService(&fakeVoiceRepo{}, &config.Config{JWTSecret: "other-secret"})
	err = other.VerifyRecordingAccess(id.String(), query.Get("exp"), query.Get("sig"))
	assert.ErrorIs(t, err, utils.ErrRecordingLinkInvalid)
}

func TestVerifyRecordingAccessRejectsExpiredLink(t *testing.T) {
	svc := newVoiceServiceForTest()
	id := uuid.New()

	exp := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	sig := svc.(*VoiceService).sign(id.String(), exp)

	err := svc.VerifyRecordingAccess(id.String(), exp, sig)
	assert.ErrorIs(t, err, utils.ErrRecordingLinkInvalid)

	err = svc.VerifyRecordingAccess(id.String(), "not-a-number", sig)
	assert.ErrorIs(t, err, utils.ErrRecordingLinkInvalid)
}

func TestSaveRecordingValidation(t *testing.T) {
	svc := newVoiceServiceForTest()

	_, err := svc.SaveRecording(context.Background(), uuid.NewString(), nil, "note.ogg", "note")
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.SaveRecording(context.Background(), "not-a-uuid", []byte("audio"), "note.ogg", "note")
	assert.ErrorIs(t, err, utils.ErrValidation)

	recording, err := svc.SaveRecording(context.Background(), uuid.NewString(), []byte("audio"), "note.ogg", "")
	require.NoError(t, err)
	assert.Equal(t, "emergency", recording.Kind)
	assert.NotEmpty(t, recording.ContentType)
}

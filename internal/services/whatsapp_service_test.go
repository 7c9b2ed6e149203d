package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lexia/internal/config"
	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
)

func TestSendEmergencyAlertHonorsCancelledContext(t *testing.T) {
	svc := NewWhatsAppService(&config.Config{
		TwilioAccountSID:   "ACtest",
		TwilioAuthToken:    "token",
		TwilioWhatsAppFrom: "+15550000000",
	}, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	contacts := []db_models.EmergencyContact{
		{Name: "Ana", Phone: "+593990000001"},
		{Name: "Luis", Phone: "+593990000002"},
	}

	results := svc.SendEmergencyAlert(ctx, contacts, "ayuda", request_models.Location{Latitude: -0.18, Longitude: -78.46}, "")
	require.Len(t, results, 2)
	for _, result := range results {
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, context.Canceled.Error())
	}
}

func TestWhatsAppAddressPrefix(t *testing.T) {
	assert.Equal(t, "whatsapp:+5939", whatsAppAddress("+5939"))
	assert.Equal(t, "whatsapp:+5939", whatsAppAddress("whatsapp:+5939"))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lexia/internal/models/request_models"
)

func TestFallbackEmergencyMessageLanguage(t *testing.T) {
	req := EmergencyMessageRequest{
		UserName: "Maria",
		Language: "es",
		Location: request_models.Location{Latitude: -0.18, Longitude: -78.46, Address: "Quito"},
	}

	msg := FallbackEmergencyMessage(req)
	assert.Contains(t, msg, "EMERGENCIA")
	assert.Contains(t, msg, "Maria")
	assert.Contains(t, msg, "Quito")

	req.Language = "en"
	msg = FallbackEmergencyMessage(req)
	assert.Contains(t, msg, "EMERGENCY")
	assert.Contains(t, msg, "Maria")
}

func TestFallbackEmergencyMessageWithoutAddress(t *testing.T) {
	msg := FallbackEmergencyMessage(EmergencyMessageRequest{
		UserName: "Maria",
		Language: "es",
		Location: request_models.Location{Latitude: -0.18, Longitude: -78.46},
	})
	assert.Contains(t, msg, "-0.18")
	assert.Contains(t, msg, "-78.46")
}

func TestNewTextGeneratorUnsupportedProvider(t *testing.T) {
	_, err := NewTextGenerator("anthropic", "key", "")
	assert.Error(t, err)
}

func TestLegalAnswerPromptCarriesExcerpts(t *testing.T) {
	prompt := buildLegalAnswerPrompt(LegalAnswerRequest{
		Query:                  "¿Puedo reclamar?",
		Country:                "EC",
		Language:               "es",
		ConstitutionalArticles: []string{"Art. 11: igualdad"},
	})
	assert.Contains(t, prompt, "¿Puedo reclamar?")
	assert.Contains(t, prompt, "Art. 11: igualdad")
}

package response_models

import (
	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
)

// AlertReport is what the emergency endpoints hand back: the per-contact
// delivery report plus the message that went out.
type AlertReport struct {
	Status           string                      `json:"status"`
	ContactsNotified []db_models.ContactOutcome  `json:"contactsNotified"`
	Location         request_models.Location     `json:"location"`
	Message          string                      `json:"message"`
	VoiceRecording   *VoiceRecordingRef          `json:"voiceRecording,omitempty"`
}

type VoiceRecordingRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

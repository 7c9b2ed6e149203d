package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AlertStatusSent   = "sent"
	AlertStatusFailed = "failed"
)

// ContactOutcome records one dispatch attempt. A contact reachable on both
// channels gets one entry per channel.
type ContactOutcome struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	Status string    `json:"status"` // sent | failed
	SentAt time.Time `json:"sent_at"`
	Error  string    `json:"error,omitempty"`
}

// EmergencyAlert is written once per activation and never updated.
type EmergencyAlert struct {
	BaseModel
	UserID           uuid.UUID                             `gorm:"type:uuid;index" json:"user_id"`
	Latitude         float64                               `json:"latitude"`
	Longitude        float64                               `json:"longitude"`
	Address          string                                `json:"address"`
	ContactsNotified datatypes.JSONType[[]ContactOutcome]  `gorm:"type:jsonb" json:"contacts_notified"`
	Status           string                                `json:"status"` // sent iff at least one outcome sent
	VoiceRecordingID *uuid.UUID                            `gorm:"type:uuid" json:"voice_recording_id,omitempty"`
}

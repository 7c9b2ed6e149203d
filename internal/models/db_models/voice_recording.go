package db_models

import "github.com/google/uuid"

// VoiceRecording is an opaque audio blob; created on upload, never mutated.
type VoiceRecording struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Filename    string    `json:"filename"`
	Kind        string    `gorm:"default:emergency" json:"kind"`
	ContentType string    `json:"content_type"`
	Data        []byte    `gorm:"type:bytea" json:"-"`
}

package db_models

import "github.com/google/uuid"

// Consultation is append-only: one row per answered query.
type Consultation struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Query    string    `json:"query"`
	Response string    `json:"response"`
	Country  string    `gorm:"size:2" json:"country"`
	Language string    `gorm:"size:5" json:"language"`
}

package db_models

import "github.com/google/uuid"

// EmergencyContact belongs to exactly one user. Phone doubles as an email
// address when it contains '@'; that is how the email channel picks its
// recipients.
type EmergencyContact struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Relationship    string    `json:"relationship"`
	WhatsappEnabled bool      `json:"whatsapp_enabled"`
}

package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ProcessStatusPending    = "pending"
	ProcessStatusInProgress = "in_progress"
	ProcessStatusCompleted  = "completed"
)

type ProcessStep struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Completed    bool     `json:"completed"`
	DueDate      string   `json:"due_date,omitempty"`
	Documents    []string `json:"documents"`
	Requirements []string `json:"requirements"`
}

type ProcessMetadata struct {
	CaseNumber    string `json:"case_number"`
	Court         string `json:"court"`
	Judge         string `json:"judge"`
	OpposingParty string `json:"opposing_party"`
	Amount        string `json:"amount"`
	Deadline      string `json:"deadline"`
	Priority      string `json:"priority"` // low | medium | high
}

// LegalProcess tracks a legal matter through an ordered checklist of steps.
// Progress is always round(100 * completed / total) and the process is
// completed exactly when progress hits 100.
type LegalProcess struct {
	BaseModel
	UserID                 uuid.UUID                            `gorm:"type:uuid;index" json:"user_id"`
	Title                  string                               `json:"title"`
	Type                   string                               `json:"type"`
	Description            string                               `json:"description"`
	Status                 string                               `gorm:"default:pending" json:"status"`
	Progress               int                                  `json:"progress"`
	CurrentStep            int                                  `json:"current_step"`
	TotalSteps             int                                  `json:"total_steps"`
	Steps                  datatypes.JSONType[[]ProcessStep]    `gorm:"type:jsonb" json:"steps"`
	RequiredDocuments      datatypes.JSONType[[]string]         `gorm:"type:jsonb" json:"required_documents"`
	LegalBasis             string                               `json:"legal_basis"`
	ConstitutionalArticles datatypes.JSONType[[]string]         `gorm:"type:jsonb" json:"constitutional_articles"`
	Timeline               string                               `json:"timeline"`
	Metadata               datatypes.JSONType[ProcessMetadata]  `gorm:"type:jsonb" json:"metadata"`
}

package db_models

type User struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"unique" json:"email"`
	GoogleID     string `gorm:"index" json:"-"`
	PasswordHash string `json:"-"`
	Language     string `gorm:"size:5" json:"language"`
	Country      string `gorm:"size:2" json:"country"`

	EmergencyContacts []EmergencyContact `json:"-"`
	LegalProcesses    []LegalProcess     `json:"-"`
	Consultations     []Consultation     `json:"-"`
}

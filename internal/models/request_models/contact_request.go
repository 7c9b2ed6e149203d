package request_models

type CreateContactRequest struct {
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Relationship    string `json:"relationship"`
	WhatsappEnabled bool   `json:"whatsapp_enabled"`
}

type UpdateContactRequest struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	Relationship    *string `json:"relationship"`
	WhatsappEnabled *bool   `json:"whatsapp_enabled"`
}

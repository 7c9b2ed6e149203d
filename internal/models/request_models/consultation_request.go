package request_models

type AskRequest struct {
	Query    string `json:"query" binding:"required"`
	Country  string `json:"country"`
	Language string `json:"language"`
}

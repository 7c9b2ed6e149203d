package request_models

type CreateProcessRequest struct {
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
}

type StepInput struct {
	ID           string   `json:"id" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Completed    bool     `json:"completed"`
	DueDate      string   `json:"due_date"`
	Documents    []string `json:"documents"`
	Requirements []string `json:"requirements"`
}

type MetadataInput struct {
	CaseNumber    *string `json:"case_number"`
	Court         *string `json:"court"`
	Judge         *string `json:"judge"`
	OpposingParty *string `json:"opposing_party"`
	Amount        *string `json:"amount"`
	Deadline      *string `json:"deadline"`
	Priority      *string `json:"priority"`
}

// UpdateProcessRequest is the allow-list for PATCH: only the named fields can
// change, nothing else in the record is touched.
type UpdateProcessRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Metadata    *MetadataInput `json:"metadata"`
	Steps       *[]StepInput   `json:"steps"`
}

type GenerateDocumentRequest struct {
	Country string `json:"country"`
}

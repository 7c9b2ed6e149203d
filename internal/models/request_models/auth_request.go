package request_models

type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"name" binding:"required"`
	Country     string `json:"country"`
	Language    string `json:"language"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateProfileRequest carries the only profile fields a user may change.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Language *string `json:"language"`
	Country  *string `json:"country"`
}

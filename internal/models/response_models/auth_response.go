package response_models

import "lexia/internal/models/db_models"

type LoginResponse struct {
	Token string          `json:"token"`
	User  *db_models.User `json:"user"`
}

type GoogleAuthURLResponse struct {
	AuthURL string `json:"authUrl"`
}

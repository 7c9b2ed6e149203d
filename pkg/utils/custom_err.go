package utils

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProcessNotFound      = errors.New("process not found")
	ErrContactNotFound      = errors.New("emergency contact not found")
	ErrRecordingNotFound    = errors.New("voice recording not found")
	ErrRecordingLinkInvalid = errors.New("recording link invalid or expired")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrValidation           = errors.New("invalid input")
	ErrDatabaseError        = errors.New("database error")
	ErrExternalService      = errors.New("external service failure")
	ErrDocumentGeneration   = errors.New("document generation failed")
)

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"lexia/internal/config"
	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
	"lexia/internal/repositories"
	"lexia/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error)
	GoogleAuthURL() string
	LoginWithGoogle(ctx context.Context, code string) (*db_models.User, string, error)
	GetProfile(ctx context.Context, userID string) (*db_models.User, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*db_models.User, error)
}

type AccountService struct {
	userRepo    repositories.UserRepository
	tokens      *utils.TokenManager
	oauthConfig *oauth2.Config
	logger      *zap.SugaredLogger
}

func NewAccountService(userRepo repositories.UserRepository, tokens *utils.TokenManager, cfg *config.Config, logger *zap.SugaredLogger) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		tokens:   tokens,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, string, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, "", utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Language:     defaultString(request.Language, "es"),
		Country:      defaultString(request.Country, "EC"),
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	token, err := a.tokens.CreateToken(user.ID)
	if err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}
	return user, token, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if user == nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(user.ID)
	if err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}
	return user, token, nil
}

func (a *AccountService) GoogleAuthURL() string {
	return a.oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a *AccountService) LoginWithGoogle(ctx context.Context, code string) (*db_models.User, string, error) {
	oauthToken, err := a.oauthConfig.Exchange(ctx, code)
	if err != nil {
		a.logger.Errorw("google code exchange failed", "error", err)
		return nil, "", utils.ErrExternalService
	}

	info, err := a.fetchGoogleUserInfo(ctx, oauthToken)
	if err != nil {
		a.logger.Errorw("google userinfo fetch failed", "error", err)
		return nil, "", utils.ErrExternalService
	}

	user, err := a.userRepo.FindByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if user == nil {
		user, err = a.userRepo.FindByEmail(ctx, info.Email)
		if err != nil {
			return nil, "", utils.ErrDatabaseError
		}
		if user == nil {
			user = &db_models.User{
				Name:     info.Name,
				Email:    info.Email,
				GoogleID: info.ID,
				Language: "es",
				Country:  "EC",
			}
			if err := a.userRepo.Insert(ctx, user); err != nil {
				return nil, "", utils.ErrDatabaseError
			}
		} else {
			// Existing email account, first Google sign-in
			user.GoogleID = info.ID
			if err := a.userRepo.Update(ctx, user, "google_id"); err != nil {
				return nil, "", utils.ErrDatabaseError
			}
		}
	}

	token, err := a.tokens.CreateToken(user.ID)
	if err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}
	return user, token, nil
}

func (a *AccountService) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := a.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*db_models.User, error) {
	user, err := a.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var columns []string
	if request.Name != nil {
		user.Name = *request.Name
		columns = append(columns, "name")
	}
	if request.Language != nil {
		user.Language = *request.Language
		columns = append(columns, "language")
	}
	if request.Country != nil {
		user.Country = *request.Country
		columns = append(columns, "country")
	}
	if len(columns) == 0 {
		return user, nil
	}

	if err := a.userRepo.Update(ctx, user, columns...); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

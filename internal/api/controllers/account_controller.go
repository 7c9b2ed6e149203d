package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexia/internal/models/request_models"
	"lexia/internal/models/response_models"
	"lexia/internal/services"
	"lexia/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account and return a session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, token, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token, User: user}, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token, User: user}, "Login successful")
}

// GoogleAuthURL godoc
// @Summary Get the Google OAuth consent URL
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/auth/google/url [get]
func (a *AccountController) GoogleAuthURL(c *gin.Context) {
	utils.RespondSuccess(c, response_models.GoogleAuthURLResponse{AuthURL: a.accountService.GoogleAuthURL()}, "OK")
}

// GoogleCallback godoc
// @Summary Exchange a Google OAuth code for a session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.GoogleLoginRequest true "OAuth code payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/google [post]
func (a *AccountController) GoogleCallback(c *gin.Context) {
	var req request_models.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, token, err := a.accountService.LoginWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token, User: user}, "Login successful")
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/auth/me [get]
func (a *AccountController) Profile(c *gin.Context) {
	user, err := a.accountService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "OK")
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/profile [put]
func (a *AccountController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.accountService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Profile updated successfully")
}

package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lexia/internal/models/request_models"
	"lexia/internal/services"
	"lexia/pkg/utils"
)

const maxVoiceUploadBytes = 10 << 20

type EmergencyController struct {
	emergencyService services.EmergencyServiceInterface
	voiceService     services.VoiceServiceInterface
}

func NewEmergencyController(
	emergencyService services.EmergencyServiceInterface,
	voiceService services.VoiceServiceInterface,
) *EmergencyController {
	return &EmergencyController{
		emergencyService: emergencyService,
		voiceService:     voiceService,
	}
}

// Activate godoc
// @Summary Trigger an emergency alert
// @Description Notifies all emergency contacts over WhatsApp and email with the user's location
// @Tags Emergency
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.ActivateAlertRequest true "Alert payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/emergency [post]
func (e *EmergencyController) Activate(c *gin.Context) {
	var req request_models.ActivateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	report, err := e.emergencyService.ActivateAlert(c.Request.Context(), c.GetString("user_id"), request_models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}, nil)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Alert dispatched")
}

// ActivateWithVoice godoc
// @Summary Trigger an emergency alert with a voice note
// @Description Stores the uploaded recording and attaches it to the alert sent to every contact
// @Tags Emergency
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param audio formData file true "Voice recording (max 10MB)"
// @Param latitude formData number true "Latitude"
// @Param longitude formData number true "Longitude"
// @Param address formData string false "Address"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/emergency/with-voice [post]
func (e *EmergencyController) ActivateWithVoice(c *gin.Context) {
	location, ok := locationFromForm(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Audio file is required")
		return
	}
	if fileHeader.Size > maxVoiceUploadBytes {
		utils.RespondError(c, http.StatusBadRequest, "Audio file exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read audio file")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxVoiceUploadBytes+1))
	if err != nil || len(audio) > maxVoiceUploadBytes {
		utils.RespondError(c, http.StatusBadRequest, "Could not read audio file")
		return
	}

	userID := c.GetString("user_id")
	recording, err := e.voiceService.SaveRecording(c.Request.Context(), userID, audio, fileHeader.Filename, "emergency")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	report, err := e.emergencyService.ActivateAlert(c.Request.Context(), userID, location, recording)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Alert dispatched")
}

func locationFromForm(c *gin.Context) (request_models.Location, bool) {
	latitude, latErr := strconv.ParseFloat(c.PostForm("latitude"), 64)
	longitude, lonErr := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if latErr != nil || lonErr != nil {
		utils.RespondError(c, http.StatusBadRequest, "Valid latitude and longitude are required")
		return request_models.Location{}, false
	}

	return request_models.Location{
		Latitude:  latitude,
		Longitude: longitude,
		Address:   c.PostForm("address"),
	}, true
}

package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"lexia/internal/services"
	"lexia/pkg/utils"
)

type VoiceController struct {
	voiceService services.VoiceServiceInterface
}

func NewVoiceController(voiceService services.VoiceServiceInterface) *VoiceController {
	return &VoiceController{
		voiceService: voiceService,
	}
}

// Upload godoc
// @Summary Upload a voice recording
// @Tags Voice
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param audio formData file true "Voice recording (max 10MB)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/voice/upload [post]
func (v *VoiceController) Upload(c *gin.Context) {
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

	recording, err := v.voiceService.SaveRecording(c.Request.Context(), c.GetString("user_id"), audio, fileHeader.Filename, "note")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"id":  recording.ID.String(),
		"url": v.voiceService.RecordingURL(recording.ID),
	}, "Recording stored successfully")
}

// Get godoc
// @Summary Fetch a stored voice recording
// @Tags Voice
// @Produce audio/mpeg
// @Param id path string true "Recording ID"
// @Param exp query string true "Link expiry (unix seconds)"
// @Param sig query string true "Link signature"
// @Success 200 {file} binary
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/voice/{id} [get]
func (v *VoiceController) Get(c *gin.Context) {
	id := c.Param("id")
	if err := v.voiceService.VerifyRecordingAccess(id, c.Query("exp"), c.Query("sig")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	recording, err := v.voiceService.GetRecording(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	contentType := recording.ContentType
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	c.Header("Content-Disposition", "inline")
	c.Data(http.StatusOK, contentType, recording.Data)
}

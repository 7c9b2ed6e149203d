package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexia/internal/models/request_models"
	"lexia/internal/models/response_models"
	"lexia/internal/services"
	"lexia/pkg/utils"
)

type ConsultationController struct {
	consultationService services.ConsultationServiceInterface
	logger              *zap.SugaredLogger
}

func NewConsultationController(
	consultationService services.ConsultationServiceInterface,
	logger *zap.SugaredLogger,
) *ConsultationController {
	return &ConsultationController{
		consultationService: consultationService,
		logger:              logger,
	}
}

// Ask godoc
// @Summary Ask a legal question
// @Description Streams the answer over Server-Sent Events: one citations event, answer chunks, then a terminal complete or error event
// @Tags Consultations
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param request body request_models.AskRequest true "Consultation payload"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} utils.APIResponse
// @Router /api/ask [post]
func (cc *ConsultationController) Ask(c *gin.Context) {
	var req request_models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	flusher, _ := c.Writer.(http.Flusher)
	clientCtx := c.Request.Context()

	emit := func(event response_models.StreamEvent) bool {
		select {
		case <-clientCtx.Done():
			return false
		default:
		}
		payload, err := json.Marshal(event)
		if err != nil {
			cc.logger.Errorw("stream event marshal failed", "error", err)
			return false
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
		if flusher != nil {
			flusher.Flush()
		}
		return true
	}

	// Generation and persistence keep going even if the client hangs up
	// mid-stream; only the emits stop.
	ctx := context.WithoutCancel(clientCtx)
	if err := cc.consultationService.Ask(ctx, c.GetString("user_id"), req, emit); err != nil {
		cc.logger.Errorw("consultation failed", "error", err)
		emit(response_models.StreamEvent{
			Type: "error",
			Data: response_models.ErrorPayload{Error: "Error al procesar la consulta"},
		})
	}
}

// History godoc
// @Summary List past consultations
// @Tags Consultations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/consultations [get]
func (cc *ConsultationController) History(c *gin.Context) {
	consultations, err := cc.consultationService.ListConsultations(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, consultations, "OK")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexia/internal/models/request_models"
	"lexia/internal/services"
	"lexia/pkg/utils"
)

type ProcessController struct {
	processService  services.ProcessServiceInterface
	documentService services.DocumentServiceInterface
}

func NewProcessController(
	processService services.ProcessServiceInterface,
	documentService services.DocumentServiceInterface,
) *ProcessController {
	return &ProcessController{
		processService:  processService,
		documentService: documentService,
	}
}

// Create godoc
// @Summary Start a legal process
// @Description Create a process seeded with the default step plan and a generated legal basis
// @Tags Processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateProcessRequest true "Process payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/processes [post]
func (p *ProcessController) Create(c *gin.Context) {
	var req request_models.CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	process, err := p.processService.CreateProcess(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, process, "Process created successfully")
}

// List godoc
// @Summary List the user's legal processes
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/processes [get]
func (p *ProcessController) List(c *gin.Context) {
	processes, err := p.processService.ListProcesses(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, processes, "OK")
}

// Get godoc
// @Summary Get a legal process
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/processes/{id} [get]
func (p *ProcessController) Get(c *gin.Context) {
	process, err := p.processService.GetProcess(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, process, "OK")
}

// Update godoc
// @Summary Update a legal process
// @Description Only title, description, metadata and steps may change
// @Tags Processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Param request body request_models.UpdateProcessRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/processes/{id} [patch]
func (p *ProcessController) Update(c *gin.Context) {
	var req request_models.UpdateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	process, err := p.processService.UpdateProcess(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, process, "Process updated successfully")
}

// ToggleStep godoc
// @Summary Toggle completion of a process step
// @Description Flips one step and recomputes progress and status
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Param stepId path string true "Step ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/processes/{id}/steps/{stepId}/toggle [post]
func (p *ProcessController) ToggleStep(c *gin.Context) {
	process, err := p.processService.ToggleStep(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("stepId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, process, "Step updated successfully")
}

// GenerateDocument godoc
// @Summary Generate a PDF summary of a process
// @Description Renders the process summary, legal basis and constitutional articles as a downloadable PDF
// @Tags Processes
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /api/processes/{id}/generate-document [post]
func (p *ProcessController) GenerateDocument(c *gin.Context) {
	var req request_models.GenerateDocumentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	doc, err := p.documentService.GenerateProcessDocument(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Country)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}

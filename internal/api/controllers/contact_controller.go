package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexia/internal/models/request_models"
	"lexia/internal/services"
	"lexia/pkg/utils"
)

type ContactController struct {
	contactService services.ContactServiceInterface
}

func NewContactController(contactService services.ContactServiceInterface) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// List godoc
// @Summary List the user's emergency contacts
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/emergency-contacts [get]
func (ct *ContactController) List(c *gin.Context) {
	contacts, err := ct.contactService.ListContacts(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contacts, "OK")
}

// Create godoc
// @Summary Add an emergency contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateContactRequest true "Contact payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/emergency-contacts [post]
func (ct *ContactController) Create(c *gin.Context) {
	var req request_models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	contact, err := ct.contactService.CreateContact(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contact, "Contact created successfully")
}

// Update godoc
// @Summary Update an emergency contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param request body request_models.UpdateContactRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/emergency-contacts/{id} [put]
func (ct *ContactController) Update(c *gin.Context) {
	var req request_models.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	contact, err := ct.contactService.UpdateContact(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contact, "Contact updated successfully")
}

// Delete godoc
// @Summary Remove an emergency contact
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/emergency-contacts/{id} [delete]
func (ct *ContactController) Delete(c *gin.Context) {
	if err := ct.contactService.DeleteContact(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Contact deleted successfully")
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"labelmedix/internal/service"
)

// LabelHandler handles label settings and layout endpoints.
type LabelHandler struct {
	labelService service.LabelService
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// GetSettings handles GET /api/v1/projects/:id/label-settings
func (h *LabelHandler) GetSettings(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	settings, err := h.labelService.GetSettings(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, settings)
}

// UpdateSettings handles PUT /api/v1/projects/:id/label-settings
func (h *LabelHandler) UpdateSettings(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var input service.UpdateLabelSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	settings, err := h.labelService.UpdateSettings(c.Request.Context(), projectID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, settings)
}

// GroupLayout handles GET /api/v1/groups/:id/label-layout
func (h *LabelHandler) GroupLayout(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	layout, err := h.labelService.GroupLayout(c.Request.Context(), groupID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, layout)
}

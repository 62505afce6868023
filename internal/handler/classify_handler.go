package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"labelmedix/internal/service"
)

// ClassifyHandler handles field type classification endpoints.
type ClassifyHandler struct {
	classificationService service.ClassificationService
}

// NewClassifyHandler creates a new ClassifyHandler.
func NewClassifyHandler(classificationService service.ClassificationService) *ClassifyHandler {
	return &ClassifyHandler{classificationService: classificationService}
}

// ClassifyTexts handles POST /api/v1/classify
func (h *ClassifyHandler) ClassifyTexts(c *gin.Context) {
	var input service.ClassifyTextsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	results, err := h.classificationService.ClassifyTexts(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, results)
}

// ReclassifyGroup handles POST /api/v1/groups/:id/classify
func (h *ClassifyHandler) ReclassifyGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	result, err := h.classificationService.ReclassifyGroup(c.Request.Context(), groupID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

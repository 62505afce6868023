package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"labelmedix/internal/service"
)

// TranslationHandler handles translation group and item endpoints.
type TranslationHandler struct {
	translationService service.TranslationService
}

// NewTranslationHandler creates a new TranslationHandler.
func NewTranslationHandler(translationService service.TranslationService) *TranslationHandler {
	return &TranslationHandler{translationService: translationService}
}

// CreateGroup handles POST /api/v1/projects/:id/groups
func (h *TranslationHandler) CreateGroup(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var input service.CreateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	group, err := h.translationService.CreateGroup(c.Request.Context(), projectID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, group)
}

// ListGroups handles GET /api/v1/projects/:id/groups
func (h *TranslationHandler) ListGroups(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	groups, err := h.translationService.ListGroups(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, groups)
}

// UpdateGroup handles PUT /api/v1/groups/:id
func (h *TranslationHandler) UpdateGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	var input service.UpdateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	group, err := h.translationService.UpdateGroup(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, group)
}

// DeleteGroup handles DELETE /api/v1/groups/:id
func (h *TranslationHandler) DeleteGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	if err := h.translationService.DeleteGroup(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// ReorderGroups handles PUT /api/v1/projects/:id/groups/reorder
func (h *TranslationHandler) ReorderGroups(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var input service.ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.translationService.ReorderGroups(c.Request.Context(), projectID, input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"reordered": len(input.OrderedIDs)})
}

// CreateItems handles POST /api/v1/groups/:id/items
func (h *TranslationHandler) CreateItems(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	var inputs []service.CreateItemInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	items, err := h.translationService.CreateItems(c.Request.Context(), groupID, inputs)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, items)
}

// ListItems handles GET /api/v1/groups/:id/items
func (h *TranslationHandler) ListItems(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	items, err := h.translationService.ListItems(c.Request.Context(), groupID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, items)
}

// UpdateItem handles PUT /api/v1/items/:id
func (h *TranslationHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}

	var input service.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.translationService.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// DeleteItem handles DELETE /api/v1/items/:id
func (h *TranslationHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}

	if err := h.translationService.DeleteItem(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// ReorderItems handles PUT /api/v1/groups/:id/items/reorder
func (h *TranslationHandler) ReorderItems(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	var input service.ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.translationService.ReorderItems(c.Request.Context(), groupID, input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"reordered": len(input.OrderedIDs)})
}

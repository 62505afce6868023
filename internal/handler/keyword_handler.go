package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"labelmedix/internal/domain"
	"labelmedix/internal/middleware"
	"labelmedix/internal/service"
)

// KeywordHandler handles field type keyword endpoints.
type KeywordHandler struct {
	keywordService service.KeywordService
}

// NewKeywordHandler creates a new KeywordHandler.
func NewKeywordHandler(keywordService service.KeywordService) *KeywordHandler {
	return &KeywordHandler{keywordService: keywordService}
}

// Create handles POST /api/v1/field-type-keywords
func (h *KeywordHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreateKeywordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	keyword, err := h.keywordService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, keyword)
}

// List handles GET /api/v1/field-type-keywords
func (h *KeywordHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	fieldType := c.Query("field_type")

	keywords, total, err := h.keywordService.List(c.Request.Context(), fieldType, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, keywords, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/field-type-keywords/:id
func (h *KeywordHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid keyword ID")
		return
	}

	keyword, err := h.keywordService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, keyword)
}

// Update handles PUT /api/v1/field-type-keywords/:id
func (h *KeywordHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid keyword ID")
		return
	}

	var input service.UpdateKeywordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	keyword, err := h.keywordService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, keyword)
}

// Delete handles DELETE /api/v1/field-type-keywords/:id
func (h *KeywordHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid keyword ID")
		return
	}

	if err := h.keywordService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// BatchImport handles POST /api/v1/field-type-keywords/batch-import.
// Accepts either a JSON array of rows or a multipart upload with an .xlsx
// file under the "file" field.
func (h *KeywordHandler) BatchImport(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
			return
		}
		defer func() { _ = file.Close() }()

		if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
			HandleError(c, domain.ErrUnsupportedImport)
			return
		}

		result, err := h.keywordService.ImportWorkbook(c.Request.Context(), userID, file)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, result)
		return
	}

	var rows []service.ImportKeywordRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.keywordService.ImportRows(c.Request.Context(), userID, rows)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

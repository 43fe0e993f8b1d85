package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"replyflow.app/api/common/id"
	"replyflow.app/api/internal/http/dto"
	"replyflow.app/api/internal/http/middleware"
	"replyflow.app/api/internal/service"
)

type KeywordHandler struct {
	automationService service.AutomationService
}

func NewKeywordHandler(automationService service.AutomationService) *KeywordHandler {
	return &KeywordHandler{automationService: automationService}
}

func (h *KeywordHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	keywords, err := h.automationService.ListKeywords(ctx, middleware.GetUserID(ctx))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list keywords"})
		return
	}

	c.JSON(http.StatusOK, dto.ListKeywordsResponse{Keywords: dto.ToKeywordResponses(keywords)})
}

func (h *KeywordHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if isBlank(req.Word) || isBlank(req.Link) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word and link are required"})
		return
	}

	keyword, err := h.automationService.CreateKeyword(ctx, middleware.GetUserID(ctx), req.ToDraft())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create keyword"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToKeywordResponse(keyword))
}

func (h *KeywordHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	keywordID, ok := keywordIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (req.Word != nil && isBlank(*req.Word)) || (req.Link != nil && isBlank(*req.Link)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word and link cannot be blank"})
		return
	}

	keyword, err := h.automationService.UpdateKeyword(ctx, middleware.GetUserID(ctx), keywordID, req.ToPatch())
	if err != nil {
		h.writeError(c, err, "failed to update keyword")
		return
	}

	c.JSON(http.StatusOK, dto.ToKeywordResponse(keyword))
}

func (h *KeywordHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	keywordID, ok := keywordIDParam(c)
	if !ok {
		return
	}

	if err := h.automationService.DeleteKeyword(ctx, middleware.GetUserID(ctx), keywordID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete keyword"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *KeywordHandler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	keywordID, ok := keywordIDParam(c)
	if !ok {
		return
	}

	keyword, err := h.automationService.ToggleKeyword(ctx, middleware.GetUserID(ctx), keywordID)
	if err != nil {
		h.writeError(c, err, "failed to toggle keyword")
		return
	}

	c.JSON(http.StatusOK, dto.ToKeywordResponse(keyword))
}

func (h *KeywordHandler) writeError(c *gin.Context, err error, msg string) {
	if errors.Is(err, service.ErrKeywordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "keyword not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func keywordIDParam(c *gin.Context) (int64, bool) {
	keywordID, err := id.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid keyword id"})
		return 0, false
	}
	return keywordID, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"replyflow.app/api/internal/http/dto"
	"replyflow.app/api/internal/http/middleware"
	"replyflow.app/api/internal/service"
)

type ConfigHandler struct {
	automationService service.AutomationService
}

func NewConfigHandler(automationService service.AutomationService) *ConfigHandler {
	return &ConfigHandler{automationService: automationService}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.automationService.GetConfig(ctx, middleware.GetUserID(ctx))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConfigResponse(cfg))
}

func (h *ConfigHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.automationService.UpdateConfig(ctx, middleware.GetUserID(ctx), req.ToPatch())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConfigResponse(cfg))
}

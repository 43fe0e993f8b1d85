package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replyflow.app/api/internal/contract"
	"replyflow.app/api/internal/http/dto"
	"replyflow.app/api/internal/http/middleware"
	"replyflow.app/api/internal/service"
)

type DashboardHandler struct {
	automationService service.AutomationService
}

func NewDashboardHandler(automationService service.AutomationService) *DashboardHandler {
	return &DashboardHandler{automationService: automationService}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	d, err := h.automationService.Dashboard(ctx, middleware.GetUserID(ctx))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Stats:          d.Stats,
		ActiveKeywords: dto.ToKeywordResponses(d.ActiveKeywords),
		TotalKeywords:  d.TotalKeywords,
	})
}

// Contract serves the JSON Schemas of the rows the automation engine reads.
func Contract(c *gin.Context) {
	c.JSON(http.StatusOK, contract.Schemas())
}

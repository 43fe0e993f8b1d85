package router

import (
	"github.com/gin-gonic/gin"

	"replyflow.app/api/internal/http/handler"
)

func KeywordRouter(rg *gin.RouterGroup, h *handler.KeywordHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/toggle", h.Toggle)
}

package router

import (
	"github.com/gin-gonic/gin"

	"replyflow.app/api/internal/http/handler"
)

func ConfigRouter(rg *gin.RouterGroup, h *handler.ConfigHandler) {
	rg.GET("", h.Get)
	rg.PATCH("", h.Update)
}

func ProfileRouter(rg *gin.RouterGroup, h *handler.ProfileHandler) {
	rg.GET("", h.Get)
	rg.PATCH("", h.Update)
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/student_support/internal/handlers"
)

// SetupShareRoutes 设置入口分享路由
func SetupShareRoutes(apiV1 *gin.RouterGroup, h *handlers.ShareHandler) {
	share := apiV1.Group("/share")
	{
		share.GET("/qrcode", h.GetQRCode)
		share.GET("/links", h.GetLinks)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/student_support/internal/handlers"
)

// SetupDashboardRoutes 设置辅导员面板路由
func SetupDashboardRoutes(apiV1 *gin.RouterGroup, h *handlers.DashboardHandler) {
	group := apiV1.Group("/dashboard")
	{
		group.GET("/submissions", h.ListSubmissions)
		group.POST("/submissions/:id/flag", h.FlagSubmission)
		group.POST("/submissions/:id/respond", h.RespondSubmission)
		group.GET("/summary", h.GetSummary)
		group.GET("/events", h.ListEvents)

		// 导出与当前列表相同的视图
		group.GET("/export.json", h.ExportJSON)
		group.GET("/export.csv", h.ExportCSV)

		group.POST("/seed", h.SeedDemoData)
		group.DELETE("/data", h.ClearData)
	}
}

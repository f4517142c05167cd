package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/student_support/internal/handlers"
)

// SetupIntakeRoutes 设置学生求助流程路由
func SetupIntakeRoutes(apiV1 *gin.RouterGroup, h *handlers.IntakeHandler) {
	drafts := apiV1.Group("/intake/drafts")
	{
		// POST /api/v1/intake/drafts
		drafts.POST("", h.StartDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.PUT("/:id", h.UpdateIntake)
		drafts.DELETE("/:id", h.ResetDraft)
		drafts.PUT("/:id/consent", h.SetConsent)
		drafts.POST("/:id/submit", h.Submit)
	}
}

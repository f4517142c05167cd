package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/student_support/pkg/utils"
)

// Healthz godoc
// @Summary 存活检查
// @Tags System
// @Produce json
// @Success 200 {object} utils.SuccessResponse "服务正常"
// @Router /healthz [get]
func Healthz(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, gin.H{"status": "ok"}, "")
}

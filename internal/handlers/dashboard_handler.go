package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/student_support/internal/dashboard"
	"github.com/student_support/internal/i18n"
	"github.com/student_support/internal/models"
	"github.com/student_support/internal/services"
	"github.com/student_support/pkg/utils"
)

// DashboardHandler 封装了辅导员面板的 HTTP 处理逻辑
type DashboardHandler struct {
	service services.CaseService
	loc     Localizer
}

// NewDashboardHandler 创建一个新的 DashboardHandler 实例
func NewDashboardHandler(service services.CaseService, loc Localizer) *DashboardHandler {
	return &DashboardHandler{service: service, loc: loc}
}

// bindParams 绑定过滤和排序查询参数，失败时已写出 400 响应
func (h *DashboardHandler) bindParams(c *gin.Context) (dashboard.Params, bool) {
	var params dashboard.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondValidationError(c, h.loc.T(c, i18n.KeyInvalidRequest), utils.ValidationDetails(err))
		return params, false
	}
	return params, true
}

// ListSubmissions godoc
// @Summary 获取求助记录列表
// @Description 按紧急程度、同意级别和关键词过滤，按 newest / oldest / urgency 排序。
// @Tags Dashboard
// @Produce json
// @Param urgency query string false "紧急程度 (all, low, medium, high)" Enums(all, low, medium, high)
// @Param consent query string false "同意级别 (all, immediate, crisis_only, none)" Enums(all, immediate, crisis_only, none)
// @Param search query string false "关键词 (匹配问题类型、留言、ID、同意级别、状态，不区分大小写)"
// @Param sort query string false "排序方式" Enums(newest, oldest, urgency) default(newest)
// @Param lang query string false "响应语言 (en/zh)"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Submission} "记录列表"
// @Failure 400 {object} utils.APIErrorResponse "请求参数无效"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/submissions [get]
func (h *DashboardHandler) ListSubmissions(c *gin.Context) {
	params, ok := h.bindParams(c)
	if !ok {
		return
	}
	rows, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
		return
	}
	message := ""
	if len(rows) == 0 {
		message = h.loc.T(c, i18n.KeyNoSubmissions)
	}
	utils.RespondSuccess(c, http.StatusOK, rows, message)
}

// GetSummary godoc
// @Summary 获取统计信息
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dashboard.Summary} "按状态、紧急程度和同意级别的计数"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, summary, "")
}

// FlagSubmission godoc
// @Summary 标记个案
// @Description 将状态为 new 的个案标记为 flagged 并记录 flag_case 事件。ID 不存在时不做任何操作。
// @Tags Dashboard
// @Produce json
// @Param id path string true "记录 ID"
// @Param lang query string false "响应语言 (en/zh)"
// @Success 200 {object} utils.SuccessResponse{data=models.Submission} "更新后的记录"
// @Failure 409 {object} utils.APIErrorResponse "个案状态不允许此操作"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/submissions/{id}/flag [post]
func (h *DashboardHandler) FlagSubmission(c *gin.Context) {
	sub, err := h.service.Flag(c.Request.Context(), c.Param("id"))
	h.respondTransition(c, sub, err, i18n.KeyCaseFlagged)
}

// RespondSubmission godoc
// @Summary 标记个案为已回复
// @Description 将状态为 new 或 flagged 的个案标记为 responded 并记录 respond_case 事件。ID 不存在时不做任何操作。
// @Tags Dashboard
// @Produce json
// @Param id path string true "记录 ID"
// @Param lang query string false "响应语言 (en/zh)"
// @Success 200 {object} utils.SuccessResponse{data=models.Submission} "更新后的记录"
// @Failure 409 {object} utils.APIErrorResponse "个案状态不允许此操作"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/submissions/{id}/respond [post]
func (h *DashboardHandler) RespondSubmission(c *gin.Context) {
	sub, err := h.service.Respond(c.Request.Context(), c.Param("id"))
	h.respondTransition(c, sub, err, i18n.KeyCaseResponded)
}

func (h *DashboardHandler) respondTransition(c *gin.Context, sub *models.Submission, err error, key string) {
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatusTransition) {
			utils.RespondConflictError(c, services.ErrInvalidStatusTransition.Error())
			return
		}
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
		return
	}
	if sub == nil { // 未知 ID
		utils.RespondSuccess(c, http.StatusOK, nil, "")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, sub, h.loc.T(c, key))
}

// ListEvents godoc
// @Summary 获取审计事件
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.EventLog} "按写入顺序排列的事件"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/events [get]
func (h *DashboardHandler) ListEvents(c *gin.Context) {
	events, err := h.service.Events(c.Request.Context())
	if err != nil {
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, events, "")
}

// ExportJSON godoc
// @Summary 导出当前视图为 JSON
// @Description 过滤和排序参数与列表接口相同。
// @Tags Dashboard
// @Produce json
// @Param urgency query string false "紧急程度" Enums(all, low, medium, high)
// @Param consent query string false "同意级别" Enums(all, immediate, crisis_only, none)
// @Param search query string false "关键词"
// @Param sort query string false "排序方式" Enums(newest, oldest, urgency)
// @Success 200 {array} models.Submission "submissions.json"
// @Failure 400 {object} utils.APIErrorResponse "请求参数无效"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/export.json [get]
func (h *DashboardHandler) ExportJSON(c *gin.Context) {
	params, ok := h.bindParams(c)
	if !ok {
		return
	}
	data, err := h.service.ExportJSON(c.Request.Context(), params)
	if err != nil {
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
		return
	}
	utils.RespondAttachment(c, "submissions.json", "application/json", data)
}

// ExportCSV godoc
// @Summary 导出当前视图为 CSV
// @Description 过滤和排序参数与列表接口相同。
// @Tags Dashboard
// @Produce text/csv
// @Param urgency query string false "紧急程度" Enums(all, low, medium, high)
// @Param consent query string false "同意级别" Enums(all, immediate, crisis_only, none)
// @Param search query string false "关键词"
// @Param sort query string false "排序方式" Enums(newest, oldest, urgency)
// @Success 200 {string} string "submissions.csv"
// @Failure 400 {object} utils.APIErrorResponse "请求参数无效"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/export.csv [get]
func (h *DashboardHandler) ExportCSV(c *gin.Context) {
	params, ok := h.bindParams(c)
	if !ok {
		return
	}
	data, err := h.service.ExportCSV(c.Request.Context(), params)
	if err != nil {
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
		return
	}
	utils.RespondAttachment(c, "submissions.csv", "text/csv; charset=utf-8", []byte(data))
}

// SeedDemoData godoc
// @Summary 生成演示数据
// @Description 在现有记录之前插入三条演示记录，不去重。
// @Tags Dashboard
// @Produce json
// @Param lang query string false "响应语言 (en/zh)"
// @Success 201 {object} utils.SuccessResponse{data=[]models.Submission} "生成的记录"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/seed [post]
func (h *DashboardHandler) SeedDemoData(c *gin.Context) {
	seeded, err := h.service.Seed(c.Request.Context())
	if err != nil {
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, seeded, h.loc.T(c, i18n.KeyDataSeeded))
}

// ClearData godoc
// @Summary 清除全部数据
// @Description 同时删除记录和审计事件。
// @Tags Dashboard
// @Produce json
// @Param lang query string false "响应语言 (en/zh)"
// @Success 200 {object} utils.SuccessResponse "已清除"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/data [delete]
func (h *DashboardHandler) ClearData(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, h.loc.T(c, i18n.KeyDataCleared))
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/student_support/internal/i18n"
	"github.com/student_support/internal/models"
	"github.com/student_support/internal/services"
	"github.com/student_support/pkg/utils"
)

// IntakeHandler 封装了学生求助流程的 HTTP 处理逻辑
type IntakeHandler struct {
	service services.IntakeService
	loc     Localizer
}

// NewIntakeHandler 创建一个新的 IntakeHandler 实例
func NewIntakeHandler(service services.IntakeService, loc Localizer) *IntakeHandler {
	return &IntakeHandler{service: service, loc: loc}
}

// StartDraftPayload 定义了开始求助请求的 JSON 结构体
type StartDraftPayload struct {
	Mode        string `json:"mode" binding:"omitempty,oneof=anonymous named"`
	DisplayName string `json:"displayName" binding:"omitempty,notblank,max=100"` // 仅 named 模式需要
}

// UpdateIntakePayload 定义了第一步表单的 JSON 结构体，空字段保留原值
type UpdateIntakePayload struct {
	IssueType string `json:"issueType" binding:"max=100"`
	Urgency   string `json:"urgency" binding:"omitempty,oneof=low medium high"`
	Message   string `json:"message" binding:"max=2000"`
}

// ConsentPayload 定义了第二步同意级别的 JSON 结构体
type ConsentPayload struct {
	ConsentLevel string `json:"consentLevel" binding:"required,oneof=immediate crisis_only none"`
}

// SubmitPayload 定义了第三步提交的 JSON 结构体
type SubmitPayload struct {
	HelpType string `json:"helpType" binding:"required,oneof=chat appointment resources"`
}

// StartDraft godoc
// @Summary 开始一次求助
// @Description 创建草稿。默认匿名提交，匿名时记录 start_anonymous 事件。
// @Tags Intake
// @Accept json
// @Produce json
// @Param lang query string false "响应语言 (en/zh)"
// @Param payload body StartDraftPayload false "提交方式"
// @Success 201 {object} utils.SuccessResponse{data=models.Draft} "新草稿"
// @Failure 400 {object} utils.APIErrorResponse "请求参数无效"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /intake/drafts [post]
func (h *IntakeHandler) StartDraft(c *gin.Context) {
	var payload StartDraftPayload
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.RespondValidationError(c, h.loc.T(c, i18n.KeyInvalidRequest), utils.ValidationDetails(err))
			return
		}
	}

	draft, err := h.service.StartDraft(c.Request.Context(), models.SubmissionMode(payload.Mode), payload.DisplayName)
	if err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, draft, h.loc.T(c, i18n.KeyDraftStarted))
}

// GetDraft godoc
// @Summary 获取草稿
// @Tags Intake
// @Produce json
// @Param id path string true "草稿 ID"
// @Success 200 {object} utils.SuccessResponse{data=models.Draft} "草稿内容"
// @Failure 404 {object} utils.APIErrorResponse "草稿未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /intake/drafts/{id} [get]
func (h *IntakeHandler) GetDraft(c *gin.Context) {
	draft, err := h.service.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, draft, "")
}

// UpdateIntake godoc
// @Summary 保存第一步回答
// @Description 保存问题类型、紧急程度和留言。留言中的 HTML 会被去除。
// @Tags Intake
// @Accept json
// @Produce json
// @Param id path string true "草稿 ID"
// @Param lang query string false "响应语言 (en/zh)"
// @Param payload body UpdateIntakePayload true "表单内容"
// @Success 200 {object} utils.SuccessResponse{data=models.Draft} "更新后的草稿"
// @Failure 400 {object} utils.APIErrorResponse "请求参数无效"
// @Failure 404 {object} utils.APIErrorResponse "草稿未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /intake/drafts/{id} [put]
func (h *IntakeHandler) UpdateIntake(c *gin.Context) {
	var payload UpdateIntakePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, h.loc.T(c, i18n.KeyInvalidRequest), utils.ValidationDetails(err))
		return
	}

	draft, err := h.service.UpdateIntake(c.Request.Context(), c.Param("id"), services.IntakeUpdate{
		IssueType: payload.IssueType,
		Urgency:   models.Urgency(payload.Urgency),
		Message:   payload.Message,
	})
	if err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, draft, h.loc.T(c, i18n.KeyDraftUpdated))
}

// SetConsent godoc
// @Summary 保存同意级别
// @Tags Intake
// @Accept json
// @Produce json
// @Param id path string true "草稿 ID"
// @Param lang query string false "响应语言 (en/zh)"
// @Param payload body ConsentPayload true "同意级别"
// @Success 200 {object} utils.SuccessResponse{data=models.Draft} "更新后的草稿"
// @Failure 400 {object} utils.APIErrorResponse "请求参数无效"
// @Failure 404 {object} utils.APIErrorResponse "草稿未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /intake/drafts/{id}/consent [put]
func (h *IntakeHandler) SetConsent(c *gin.Context) {
	var payload ConsentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, h.loc.T(c, i18n.KeyInvalidRequest), utils.ValidationDetails(err))
		return
	}

	draft, err := h.service.SetConsent(c.Request.Context(), c.Param("id"), models.ConsentLevel(payload.ConsentLevel))
	if err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, draft, h.loc.T(c, i18n.KeyConsentSaved))
}

// Submit godoc
// @Summary 提交求助
// @Description 将草稿转换为一条新记录并返回前端后续页面。危机个案且同意立即通知时会提醒辅导员。
// @Tags Intake
// @Accept json
// @Produce json
// @Param id path string true "草稿 ID"
// @Param lang query string false "响应语言 (en/zh)"
// @Param payload body SubmitPayload true "帮助类型"
// @Success 201 {object} utils.SuccessResponse{data=services.SubmitResult} "新记录与后续页面"
// @Failure 400 {object} utils.APIErrorResponse "请求参数无效"
// @Failure 404 {object} utils.APIErrorResponse "草稿未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /intake/drafts/{id}/submit [post]
func (h *IntakeHandler) Submit(c *gin.Context) {
	var payload SubmitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, h.loc.T(c, i18n.KeyInvalidRequest), utils.ValidationDetails(err))
		return
	}

	result, err := h.service.Submit(c.Request.Context(), c.Param("id"), models.HelpType(payload.HelpType))
	if err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, result, h.loc.T(c, i18n.KeySubmitted))
}

// ResetDraft godoc
// @Summary 放弃草稿
// @Tags Intake
// @Produce json
// @Param id path string true "草稿 ID"
// @Param lang query string false "响应语言 (en/zh)"
// @Success 200 {object} utils.SuccessResponse "已重置"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /intake/drafts/{id} [delete]
func (h *IntakeHandler) ResetDraft(c *gin.Context) {
	if err := h.service.ResetDraft(c.Request.Context(), c.Param("id")); err != nil {
		h.respondIntakeError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, h.loc.T(c, i18n.KeyDraftReset))
}

func (h *IntakeHandler) respondIntakeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDraftNotFound):
		utils.RespondNotFoundError(c, services.ErrDraftNotFound.Error())
	case errors.Is(err, services.ErrInvalidMode),
		errors.Is(err, services.ErrDisplayNameRequired),
		errors.Is(err, services.ErrInvalidUrgency),
		errors.Is(err, services.ErrInvalidConsentLevel),
		errors.Is(err, services.ErrInvalidHelpType):
		utils.RespondValidationError(c, h.loc.T(c, i18n.KeyInvalidRequest), err.Error())
	default:
		utils.RespondInternalServerError(c, h.loc.T(c, i18n.KeyInternalError), err.Error())
	}
}

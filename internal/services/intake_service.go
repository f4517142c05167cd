package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/student_support/internal/models"
	"github.com/student_support/internal/repositories"
	"github.com/student_support/pkg/email"
)

// DefaultIssueType 在学生未选择问题类型时使用
const DefaultIssueType = "general"

// ErrDraftNotFound 表示草稿不存在或已提交
var ErrDraftNotFound = repositories.ErrDraftNotFound

// ErrInvalidMode 表示提交方式不是 anonymous / named
var ErrInvalidMode = errors.New("无效的提交方式")

// ErrDisplayNameRequired 表示实名提交时缺少称呼
var ErrDisplayNameRequired = errors.New("实名提交需要填写称呼")

// ErrInvalidUrgency 表示紧急程度不是 low / medium / high
var ErrInvalidUrgency = errors.New("无效的紧急程度")

// ErrInvalidConsentLevel 表示同意级别无效
var ErrInvalidConsentLevel = errors.New("无效的同意级别")

// ErrInvalidHelpType 表示帮助类型不是 chat / appointment / resources
var ErrInvalidHelpType = errors.New("无效的帮助类型")

// IntakeUpdate 是第一步表单的内容，空字段保留原值
type IntakeUpdate struct {
	IssueType string
	Urgency   models.Urgency
	Message   string
}

// SubmitResult 是提交后的记录和前端的后续页面
type SubmitResult struct {
	Submission models.Submission `json:"submission"`
	NextRoute  string            `json:"nextRoute"`
}

// IntakeService 定义了学生求助流程的接口
type IntakeService interface {
	StartDraft(ctx context.Context, mode models.SubmissionMode, displayName string) (*models.Draft, error)
	GetDraft(ctx context.Context, id string) (*models.Draft, error)
	UpdateIntake(ctx context.Context, id string, update IntakeUpdate) (*models.Draft, error)
	SetConsent(ctx context.Context, id string, level models.ConsentLevel) (*models.Draft, error)
	Submit(ctx context.Context, id string, helpType models.HelpType) (*SubmitResult, error)
	ResetDraft(ctx context.Context, id string) error
}

// IntakeOption 用于定制 intakeService
type IntakeOption func(*intakeService)

// WithIntakeClock 替换当前时间来源 (测试用)
func WithIntakeClock(now func() time.Time) IntakeOption {
	return func(s *intakeService) { s.now = now }
}

// WithIntakeIDGenerator 替换草稿与记录 ID 的生成函数 (测试用)
func WithIntakeIDGenerator(newID func() string) IntakeOption {
	return func(s *intakeService) { s.newID = newID }
}

// WithDashboardURL 设置危机提醒邮件中的面板链接
func WithDashboardURL(url string) IntakeOption {
	return func(s *intakeService) { s.dashboardURL = url }
}

type intakeService struct {
	drafts       repositories.DraftRepository
	submissions  repositories.SubmissionRepository
	notifier     email.Notifier
	policy       *bluemonday.Policy
	now          func() time.Time
	newID        func() string
	dashboardURL string

	// mu 串行化本进程内对草稿的读-改-写，同一草稿只能提交一次
	mu sync.Mutex
}

// NewIntakeService 创建一个新的 intakeService 实例，notifier 为 nil 时不发送提醒
func NewIntakeService(drafts repositories.DraftRepository, submissions repositories.SubmissionRepository, notifier email.Notifier, opts ...IntakeOption) IntakeService {
	if notifier == nil {
		notifier = email.NopNotifier{}
	}
	s := &intakeService{
		drafts:      drafts,
		submissions: submissions,
		notifier:    notifier,
		policy:      bluemonday.StrictPolicy(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartDraft 开始一次新的求助流程
func (s *intakeService) StartDraft(ctx context.Context, mode models.SubmissionMode, displayName string) (*models.Draft, error) {
	if mode == "" {
		mode = models.ModeAnonymous
	}
	displayName = strings.TrimSpace(displayName)
	switch mode {
	case models.ModeAnonymous:
		displayName = "" // 匿名提交不保存称呼
	case models.ModeNamed:
		if displayName == "" {
			return nil, ErrDisplayNameRequired
		}
	default:
		return nil, ErrInvalidMode
	}

	draft := &models.Draft{
		ID:          s.newID(),
		Mode:        mode,
		DisplayName: s.policy.Sanitize(displayName),
		CreatedAt:   s.now().UnixMilli(),
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	if mode == models.ModeAnonymous {
		if _, err := s.submissions.LogEvent(ctx, models.EventStartAnonymous, map[string]interface{}{"draftId": draft.ID}); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// GetDraft 读取草稿
func (s *intakeService) GetDraft(ctx context.Context, id string) (*models.Draft, error) {
	return s.drafts.FindByID(ctx, id)
}

// UpdateIntake 保存第一步的回答，留言会去除所有 HTML
func (s *intakeService) UpdateIntake(ctx context.Context, id string, update IntakeUpdate) (*models.Draft, error) {
	if update.Urgency != "" && !update.Urgency.Valid() {
		return nil, ErrInvalidUrgency
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.drafts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue := strings.TrimSpace(update.IssueType); issue != "" {
		draft.IssueType = s.policy.Sanitize(issue)
	}
	if update.Urgency != "" {
		draft.Urgency = update.Urgency
	}
	if msg := strings.TrimSpace(update.Message); msg != "" {
		draft.Message = s.policy.Sanitize(msg)
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetConsent 保存第二步的同意级别
func (s *intakeService) SetConsent(ctx context.Context, id string, level models.ConsentLevel) (*models.Draft, error) {
	if !level.Valid() {
		return nil, ErrInvalidConsentLevel
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.drafts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	draft.ConsentLevel = level
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	if _, err := s.submissions.LogEvent(ctx, models.EventSetConsent, map[string]interface{}{"level": string(level)}); err != nil {
		return nil, err
	}
	return draft, nil
}

// Submit 将草稿转换为一条新的求助记录
func (s *intakeService) Submit(ctx context.Context, id string, helpType models.HelpType) (*SubmitResult, error) {
	pref, ok := helpType.ResponsePref()
	if !ok {
		return nil, ErrInvalidHelpType
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.drafts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	urgency := draft.Urgency
	if urgency == "" {
		urgency = models.UrgencyMedium
	}
	consent := draft.ConsentLevel
	if consent == "" {
		consent = models.ConsentNone
	}
	issueType := draft.IssueType
	if issueType == "" {
		issueType = DefaultIssueType
	}

	sub := models.Submission{
		ID:           s.newID(),
		Timestamp:    s.now().UnixMilli(),
		Mode:         draft.Mode,
		DisplayName:  draft.DisplayName,
		IssueType:    issueType,
		Urgency:      urgency,
		ResponsePref: pref,
		ConsentLevel: consent,
		CrisisFlag:   models.DeriveCrisisFlag(urgency),
		Message:      draft.Message,
		Status:       models.StatusNew,
	}
	if err := s.submissions.AddSubmission(ctx, sub); err != nil {
		return nil, err
	}
	// 记录写入后立即删除草稿，之后的重复提交得到 ErrDraftNotFound
	if err := s.drafts.Delete(ctx, draft.ID); err != nil {
		log.Printf("警告: 提交 %s 后删除草稿 %s 失败: %v", sub.ID, draft.ID, err)
	}
	if _, err := s.submissions.LogEvent(ctx, models.EventSubmitted, map[string]interface{}{"id": sub.ID, "mode": string(sub.Mode)}); err != nil {
		return nil, err
	}

	if sub.CrisisFlag && sub.ConsentLevel == models.ConsentImmediate {
		s.notifyCrisis(sub)
	}
	return &SubmitResult{Submission: sub, NextRoute: helpType.Route()}, nil
}

// notifyCrisis 发送提醒，失败只记录日志
func (s *intakeService) notifyCrisis(sub models.Submission) {
	alert := email.CrisisAlert{
		SubmissionID: sub.ID,
		IssueType:    sub.IssueType,
		Urgency:      string(sub.Urgency),
		ResponsePref: string(sub.ResponsePref),
		SubmittedAt:  time.UnixMilli(sub.Timestamp),
		DashboardURL: s.dashboardURL,
	}
	if err := s.notifier.NotifyCrisis(alert); err != nil {
		log.Printf("错误: 发送危机提醒失败 (submission %s): %v", sub.ID, err)
		return
	}
	log.Printf("已发送危机提醒 (submission %s)", sub.ID)
}

// ResetDraft 放弃草稿
func (s *intakeService) ResetDraft(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts.Delete(ctx, id)
}

package services

import (
	"context"

	"github.com/student_support/internal/dashboard"
	"github.com/student_support/internal/models"
	"github.com/student_support/internal/repositories"
)

// ErrInvalidStatusTransition 表示状态不能按请求流转 (例如已回复的个案再次标记)
var ErrInvalidStatusTransition = repositories.ErrInvalidStatusTransition

// CaseService 定义了辅导员面板的业务接口
type CaseService interface {
	List(ctx context.Context, params dashboard.Params) ([]models.Submission, error)
	Summary(ctx context.Context) (dashboard.Summary, error)
	// Flag 和 Respond 在 id 不存在时返回 (nil, nil)
	Flag(ctx context.Context, id string) (*models.Submission, error)
	Respond(ctx context.Context, id string) (*models.Submission, error)
	Events(ctx context.Context) ([]models.EventLog, error)
	Clear(ctx context.Context) error
	Seed(ctx context.Context) ([]models.Submission, error)
	ExportJSON(ctx context.Context, params dashboard.Params) ([]byte, error)
	ExportCSV(ctx context.Context, params dashboard.Params) (string, error)
}

type caseService struct {
	repo repositories.SubmissionRepository
}

// NewCaseService 创建一个新的 caseService 实例
func NewCaseService(repo repositories.SubmissionRepository) CaseService {
	return &caseService{repo: repo}
}

// List 返回按面板条件过滤和排序后的记录
func (s *caseService) List(ctx context.Context, params dashboard.Params) ([]models.Submission, error) {
	list, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.Apply(list, params), nil
}

// Summary 统计全部记录，不受过滤条件影响
func (s *caseService) Summary(ctx context.Context) (dashboard.Summary, error) {
	list, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	return dashboard.Summarize(list), nil
}

// Flag 将个案标记为需要跟进
func (s *caseService) Flag(ctx context.Context, id string) (*models.Submission, error) {
	return s.transition(ctx, id, models.StatusFlagged, models.EventFlagCase)
}

// Respond 将个案标记为已回复
func (s *caseService) Respond(ctx context.Context, id string) (*models.Submission, error) {
	return s.transition(ctx, id, models.StatusResponded, models.EventRespondCase)
}

// transition 的检查与写入在仓库锁内完成，事件在状态写入成功后记录
func (s *caseService) transition(ctx context.Context, id string, next models.SubmissionStatus, eventType models.EventType) (*models.Submission, error) {
	updated, found, err := s.repo.TransitionStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if _, err := s.repo.LogEvent(ctx, eventType, map[string]interface{}{"id": id}); err != nil {
		return nil, err
	}
	return updated, nil
}

// Events 返回审计事件
func (s *caseService) Events(ctx context.Context) ([]models.EventLog, error) {
	return s.repo.ListEvents(ctx)
}

// Clear 删除全部记录与事件
func (s *caseService) Clear(ctx context.Context) error {
	return s.repo.ClearAll(ctx)
}

// Seed 插入演示数据
func (s *caseService) Seed(ctx context.Context) ([]models.Submission, error) {
	return s.repo.SeedDemoData(ctx)
}

// ExportJSON 导出当前视图为缩进 JSON
func (s *caseService) ExportJSON(ctx context.Context, params dashboard.Params) ([]byte, error) {
	rows, err := s.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return dashboard.ExportJSON(rows)
}

// ExportCSV 导出当前视图为 CSV
func (s *caseService) ExportCSV(ctx context.Context, params dashboard.Params) (string, error) {
	rows, err := s.List(ctx, params)
	if err != nil {
		return "", err
	}
	return dashboard.ExportCSV(rows), nil
}

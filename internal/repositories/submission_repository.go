package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/student_support/internal/models"
	"github.com/student_support/pkg/kv"
)

const (
	submissionsKey = "submissions"
	eventsKey      = "events"
)

// ErrStorageWrite 表示写入键值存储失败
var ErrStorageWrite = errors.New("写入存储失败")

// ErrStorageRead 表示读取键值存储失败 (解析失败不属于此类，会回退为空列表)
var ErrStorageRead = errors.New("读取存储失败")

// ErrInvalidStatus 表示状态不是 new / flagged / responded
var ErrInvalidStatus = errors.New("无效的个案状态")

// ErrInvalidStatusTransition 表示状态不能按请求流转 (例如已回复的个案再次标记)
var ErrInvalidStatusTransition = errors.New("个案状态不允许此操作")

// ErrInvalidEventType 表示事件类型不在已定义的集合中
var ErrInvalidEventType = errors.New("无效的事件类型")

// SubmissionRepository 定义了求助记录和审计事件的存储接口
type SubmissionRepository interface {
	// ListSubmissions 返回已保存的记录 (最新的在前)，存储缺失或无法解析时返回空列表
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	// AddSubmission 将记录插入到列表开头并整体写回
	AddSubmission(ctx context.Context, s models.Submission) error
	// UpdateStatus 更新匹配 id 的记录状态，未匹配时静默忽略
	UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) error
	// TransitionStatus 在同一把锁内检查并更新状态；id 不存在时返回 found=false
	TransitionStatus(ctx context.Context, id string, next models.SubmissionStatus) (sub *models.Submission, found bool, err error)
	// ClearAll 同时删除记录和事件两个集合
	ClearAll(ctx context.Context) error
	// LogEvent 追加一条审计事件
	LogEvent(ctx context.Context, eventType models.EventType, payload map[string]interface{}) (models.EventLog, error)
	// ListEvents 按写入顺序返回审计事件
	ListEvents(ctx context.Context) ([]models.EventLog, error)
	// SeedDemoData 在现有数据之前插入三条演示记录，并为每条记录追加 submitted 事件。
	// 记录先写入，事件随后一次写入；事件写入失败时记录已保存，返回的错误包含 ErrStorageWrite
	SeedDemoData(ctx context.Context) ([]models.Submission, error)
}

// Option 用于定制 kvSubmissionRepository
type Option func(*kvSubmissionRepository)

// WithKeyPrefix 为两个存储键添加前缀，便于多个实例共享同一个后端
func WithKeyPrefix(prefix string) Option {
	return func(r *kvSubmissionRepository) { r.prefix = prefix }
}

// WithClock 替换当前时间来源 (测试用)
func WithClock(now func() time.Time) Option {
	return func(r *kvSubmissionRepository) { r.now = now }
}

// WithIDGenerator 替换 ID 生成函数 (测试用)
func WithIDGenerator(newID func() string) Option {
	return func(r *kvSubmissionRepository) { r.newID = newID }
}

type kvSubmissionRepository struct {
	store  kv.Store
	prefix string
	now    func() time.Time
	newID  func() string

	// mu 串行化本进程内的读-改-写；跨进程仍是后写覆盖
	mu sync.Mutex
}

// NewSubmissionRepository 创建一个基于键值存储的 SubmissionRepository 实例
func NewSubmissionRepository(store kv.Store, opts ...Option) SubmissionRepository {
	r := &kvSubmissionRepository{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *kvSubmissionRepository) submissionsKey() string { return r.prefix + submissionsKey }
func (r *kvSubmissionRepository) eventsKey() string      { return r.prefix + eventsKey }

// readList 读取并解析一个 JSON 数组，键缺失或解析失败时返回空列表
func readList[T any](ctx context.Context, store kv.Store, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrStorageRead, key, err)
	}
	if raw == "" {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("警告: 存储键 %s 的内容无法解析，按空列表处理: %v", key, err)
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

func writeList[T any](ctx context.Context, store kv.Store, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStorageWrite, key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStorageWrite, key, err)
	}
	return nil
}

// ListSubmissions 实现 SubmissionRepository
func (r *kvSubmissionRepository) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	return readList[models.Submission](ctx, r.store, r.submissionsKey())
}

// AddSubmission 实现 SubmissionRepository，不检查 ID 唯一性
func (r *kvSubmissionRepository) AddSubmission(ctx context.Context, s models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.ListSubmissions(ctx)
	if err != nil {
		return err
	}
	list = append([]models.Submission{s}, list...)
	return writeList(ctx, r.store, r.submissionsKey(), list)
}

// UpdateStatus 实现 SubmissionRepository
func (r *kvSubmissionRepository) UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.ListSubmissions(ctx)
	if err != nil {
		return err
	}
	matched := false
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			matched = true
		}
	}
	if !matched {
		return nil
	}
	return writeList(ctx, r.store, r.submissionsKey(), list)
}

// TransitionStatus 实现 SubmissionRepository，以第一条匹配记录的当前状态判断能否流转
func (r *kvSubmissionRepository) TransitionStatus(ctx context.Context, id string, next models.SubmissionStatus) (*models.Submission, bool, error) {
	if !next.Valid() {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.ListSubmissions(ctx)
	if err != nil {
		return nil, false, err
	}
	first := -1
	for i := range list {
		if list[i].ID == id {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, false, nil
	}
	if !list[first].Status.CanTransitionTo(next) {
		return nil, true, ErrInvalidStatusTransition
	}
	for i := range list {
		if list[i].ID == id {
			list[i].Status = next
		}
	}
	if err := writeList(ctx, r.store, r.submissionsKey(), list); err != nil {
		return nil, true, err
	}
	updated := list[first]
	return &updated, true, nil
}

// ClearAll 实现 SubmissionRepository，两个键在一次后端调用中删除
func (r *kvSubmissionRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, r.submissionsKey(), r.eventsKey()); err != nil {
		return fmt.Errorf("%w: clear: %v", ErrStorageWrite, err)
	}
	return nil
}

// LogEvent 实现 SubmissionRepository，未定义的事件类型返回 ErrInvalidEventType
func (r *kvSubmissionRepository) LogEvent(ctx context.Context, eventType models.EventType, payload map[string]interface{}) (models.EventLog, error) {
	if !eventType.Valid() {
		return models.EventLog{}, fmt.Errorf("%w: %q", ErrInvalidEventType, eventType)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.newEvent(eventType, payload)
	if err := r.appendEvents(ctx, entry); err != nil {
		return models.EventLog{}, err
	}
	return entry, nil
}

func (r *kvSubmissionRepository) newEvent(eventType models.EventType, payload map[string]interface{}) models.EventLog {
	return models.EventLog{
		ID:        r.newID(),
		Timestamp: r.now().UnixMilli(),
		Type:      eventType,
		Payload:   payload,
	}
}

// appendEvents 一次写回追加后的事件列表，调用方持有 r.mu
func (r *kvSubmissionRepository) appendEvents(ctx context.Context, entries ...models.EventLog) error {
	events, err := r.ListEvents(ctx)
	if err != nil {
		return err
	}
	events = append(events, entries...)
	return writeList(ctx, r.store, r.eventsKey(), events)
}

// ListEvents 实现 SubmissionRepository
func (r *kvSubmissionRepository) ListEvents(ctx context.Context) ([]models.EventLog, error) {
	return readList[models.EventLog](ctx, r.store, r.eventsKey())
}

// SeedDemoData 实现 SubmissionRepository，不做去重
func (r *kvSubmissionRepository) SeedDemoData(ctx context.Context) ([]models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	examples := DemoSubmissions(r.now(), r.newID)
	current, err := r.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]models.Submission, 0, len(examples)+len(current))
	list = append(list, examples...)
	list = append(list, current...)
	if err := writeList(ctx, r.store, r.submissionsKey(), list); err != nil {
		return nil, err
	}
	entries := make([]models.EventLog, 0, len(examples))
	for _, e := range examples {
		entries = append(entries, r.newEvent(models.EventSubmitted, map[string]interface{}{"id": e.ID, "seeded": true}))
	}
	if err := r.appendEvents(ctx, entries...); err != nil {
		return examples, err
	}
	return examples, nil
}

// DemoSubmissions 返回覆盖全部三个同意级别的演示记录，时间相对于 now
func DemoSubmissions(now time.Time, newID func() string) []models.Submission {
	at := func(ago time.Duration) int64 { return now.Add(-ago).UnixMilli() }
	return []models.Submission{
		{
			ID:           newID(),
			Timestamp:    at(45 * time.Minute),
			Mode:         models.ModeAnonymous,
			IssueType:    "Emotions/feelings",
			Urgency:      models.UrgencyHigh,
			ResponsePref: models.ResponseMessage,
			ConsentLevel: models.ConsentImmediate,
			CrisisFlag:   true,
			Message:      "Feeling overwhelmed before exams.",
			Status:       models.StatusNew,
		},
		{
			ID:           newID(),
			Timestamp:    at(20 * time.Minute),
			Mode:         models.ModeAnonymous,
			IssueType:    "Academic",
			Urgency:      models.UrgencyMedium,
			ResponsePref: models.ResponseAppointment,
			ConsentLevel: models.ConsentCrisisOnly,
			CrisisFlag:   false,
			Message:      "Struggling with assignments and focus.",
			Status:       models.StatusNew,
		},
		{
			ID:           newID(),
			Timestamp:    at(5 * time.Minute),
			Mode:         models.ModeAnonymous,
			IssueType:    "Family/peers",
			Urgency:      models.UrgencyLow,
			ResponsePref: models.ResponseResources,
			ConsentLevel: models.ConsentNone,
			CrisisFlag:   false,
			Message:      "Conflict with a friend.",
			Status:       models.StatusNew,
		},
	}
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/student_support/internal/models"
	"github.com/student_support/pkg/kv"
)

const draftKeyPrefix = "draft:"

// ErrDraftNotFound 表示草稿不存在或已提交
var ErrDraftNotFound = errors.New("草稿未找到")

// DraftRepository 定义了求助表单草稿的存储接口
type DraftRepository interface {
	Save(ctx context.Context, draft *models.Draft) error
	FindByID(ctx context.Context, id string) (*models.Draft, error)
	Delete(ctx context.Context, id string) error
}

type kvDraftRepository struct {
	store  kv.Store
	prefix string
}

// NewDraftRepository 创建一个基于键值存储的 DraftRepository 实例
func NewDraftRepository(store kv.Store, keyPrefix string) DraftRepository {
	return &kvDraftRepository{store: store, prefix: keyPrefix}
}

func (r *kvDraftRepository) key(id string) string {
	return r.prefix + draftKeyPrefix + id
}

// Save 写入或覆盖草稿
func (r *kvDraftRepository) Save(ctx context.Context, draft *models.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: draft %s: %v", ErrStorageWrite, draft.ID, err)
	}
	if err := r.store.Set(ctx, r.key(draft.ID), string(data)); err != nil {
		return fmt.Errorf("%w: draft %s: %v", ErrStorageWrite, draft.ID, err)
	}
	return nil
}

// FindByID 读取草稿；损坏的草稿与不存在同样处理
func (r *kvDraftRepository) FindByID(ctx context.Context, id string) (*models.Draft, error) {
	raw, err := r.store.Get(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: draft %s: %v", ErrStorageRead, id, err)
	}
	var draft models.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, ErrDraftNotFound
	}
	return &draft, nil
}

// Delete 删除草稿，不存在时不报错
func (r *kvDraftRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.key(id)); err != nil {
		return fmt.Errorf("%w: draft %s: %v", ErrStorageWrite, id, err)
	}
	return nil
}

package dao

import (
	"context"
	"time"

	"github.com/haierkeys/recipe-memo-service/internal/domain"
	"github.com/haierkeys/recipe-memo-service/internal/model"
	"github.com/haierkeys/recipe-memo-service/pkg/app"
	"github.com/haierkeys/recipe-memo-service/pkg/timex"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// memoRepository 实现 domain.MemoRepository 接口
type memoRepository struct {
	dao *Dao
}

// NewMemoRepository 创建 MemoRepository 实例
func NewMemoRepository(dao *Dao) domain.MemoRepository {
	return &memoRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *memoRepository) toDomain(m *model.Memo) *domain.Memo {
	if m == nil {
		return nil
	}
	return &domain.Memo{
		ID:        m.ID,
		RecordKey: m.RecordKey,
		UID:       m.UID,
		URL:       m.URL,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *memoRepository) toModel(memo *domain.Memo) *model.Memo {
	if memo == nil {
		return nil
	}
	return &model.Memo{
		ID:        memo.ID,
		RecordKey: memo.RecordKey,
		UID:       memo.UID,
		URL:       memo.URL,
		Title:     memo.Title,
		Content:   memo.Content,
		CreatedAt: timex.Time(memo.CreatedAt),
		UpdatedAt: timex.Time(memo.UpdatedAt),
	}
}

// GetByRecordKey 根据记录键获取备忘录
func (r *memoRepository) GetByRecordKey(ctx context.Context, recordKey string, uid int64) (*domain.Memo, error) {
	var m model.Memo
	err := r.dao.WithContext(ctx).
		Where("record_key = ? AND uid = ?", recordKey, uid).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetAnyByRecordKey 根据记录键获取备忘录，不限定归属用户
func (r *memoRepository) GetAnyByRecordKey(ctx context.Context, recordKey string) (*domain.Memo, error) {
	var m model.Memo
	err := r.dao.WithContext(ctx).
		Where("record_key = ?", recordKey).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByURL 根据页面地址获取备忘录
// 同一 (uid, url) 下只取最新的一条
func (r *memoRepository) GetByURL(ctx context.Context, url string, uid int64) (*domain.Memo, error) {
	var m model.Memo
	err := r.dao.WithContext(ctx).
		Where("uid = ? AND url = ?", uid, url).
		Order("updated_at DESC").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Save 保存备忘录
// 在单个事务里完成存在性检查：已存在时只改标题、内容和更新时间，
// 创建时间与 URL 不动；不存在时整条写入
func (r *memoRepository) Save(ctx context.Context, memo *domain.Memo, uid int64) (*domain.Memo, error) {
	var saved model.Memo

	err := r.dao.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Memo
		err := tx.Where("record_key = ? AND uid = ?", memo.RecordKey, uid).
			First(&existing).Error

		if err == nil {
			updates := map[string]interface{}{
				"title":      memo.Title,
				"content":    memo.Content,
				"updated_at": timex.Time(memo.UpdatedAt),
			}
			if err := tx.Model(&model.Memo{}).
				Where("id = ?", existing.ID).
				Updates(updates).Error; err != nil {
				return errors.Wrap(err, "update memo")
			}
			return tx.Where("id = ?", existing.ID).First(&saved).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(err, "lookup memo")
		}

		m := r.toModel(memo)
		m.ID = 0
		if err := tx.Create(m).Error; err != nil {
			return errors.Wrap(err, "create memo")
		}
		saved = *m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.toDomain(&saved), nil
}

// Delete 物理删除备忘录
func (r *memoRepository) Delete(ctx context.Context, recordKey string, uid int64) error {
	result := r.dao.WithContext(ctx).
		Where("record_key = ? AND uid = ?", recordKey, uid).
		Delete(&model.Memo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List 分页获取备忘录列表，按更新时间倒序
func (r *memoRepository) List(ctx context.Context, uid int64, page, pageSize int) ([]*domain.Memo, error) {
	var ms []*model.Memo
	err := r.dao.WithContext(ctx).
		Where("uid = ?", uid).
		Order("updated_at DESC").
		Offset(app.GetPageOffset(page, pageSize)).
		Limit(pageSize).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	memos := make([]*domain.Memo, 0, len(ms))
	for _, m := range ms {
		memos = append(memos, r.toDomain(m))
	}
	return memos, nil
}

// ListCount 获取备忘录数量
func (r *memoRepository) ListCount(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := r.dao.WithContext(ctx).
		Model(&model.Memo{}).
		Where("uid = ?", uid).
		Count(&count).Error
	return count, err
}

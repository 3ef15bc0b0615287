package dao

import (
	"context"
	"time"

	"github.com/haierkeys/recipe-memo-service/internal/domain"
	"github.com/haierkeys/recipe-memo-service/internal/model"
	"github.com/haierkeys/recipe-memo-service/pkg/timex"
)

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UID:         m.UID,
		Username:    m.Username,
		IsAnonymous: m.IsAnonymous,
		CreatedAt:   time.Time(m.CreatedAt),
		UpdatedAt:   time.Time(m.UpdatedAt),
		LastSeenAt:  time.Time(m.LastSeenAt),
	}
}

func (r *userRepository) toModel(user *domain.User) *model.User {
	if user == nil {
		return nil
	}
	return &model.User{
		UID:         user.UID,
		Username:    user.Username,
		IsAnonymous: user.IsAnonymous,
		CreatedAt:   timex.Time(user.CreatedAt),
		UpdatedAt:   timex.Time(user.UpdatedAt),
		LastSeenAt:  timex.Time(user.LastSeenAt),
	}
}

// GetByUID 根据UID获取用户
func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	var m model.User
	err := r.dao.WithContext(ctx).Where("uid = ?", uid).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	m.UID = 0
	if err := r.dao.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// UpdateLastSeen 更新用户最近活跃时间
func (r *userRepository) UpdateLastSeen(ctx context.Context, uid int64) error {
	return r.dao.WithContext(ctx).
		Model(&model.User{}).
		Where("uid = ?", uid).
		Update("last_seen_at", timex.Now()).Error
}

// ListStaleAnonymous 获取在截止时间之前再无活动的匿名用户
func (r *userRepository) ListStaleAnonymous(ctx context.Context, cutoffUnix int64) ([]*domain.User, error) {
	cutoff := timex.Time(time.Unix(cutoffUnix, 0))

	var ms []*model.User
	err := r.dao.WithContext(ctx).
		Where("is_anonymous = ? AND last_seen_at < ?", true, cutoff).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(ms))
	for _, m := range ms {
		users = append(users, r.toDomain(m))
	}
	return users, nil
}

// Delete 物理删除用户
func (r *userRepository) Delete(ctx context.Context, uid int64) error {
	return r.dao.WithContext(ctx).
		Where("uid = ?", uid).
		Delete(&model.User{}).Error
}

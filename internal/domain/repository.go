// Package domain 定义领域模型和接口
package domain

import "context"

// MemoRepository 备忘录仓储接口
type MemoRepository interface {
	// GetByRecordKey 根据记录键获取备忘录
	GetByRecordKey(ctx context.Context, recordKey string, uid int64) (*Memo, error)

	// GetAnyByRecordKey 根据记录键获取备忘录，不限定归属用户
	// 删除前的归属校验用
	GetAnyByRecordKey(ctx context.Context, recordKey string) (*Memo, error)

	// GetByURL 根据页面地址获取备忘录
	GetByURL(ctx context.Context, url string, uid int64) (*Memo, error)

	// Save 保存备忘录：不存在则创建，存在则只更新标题、内容和更新时间
	Save(ctx context.Context, memo *Memo, uid int64) (*Memo, error)

	// Delete 物理删除备忘录
	Delete(ctx context.Context, recordKey string, uid int64) error

	// List 分页获取备忘录列表，按更新时间倒序
	List(ctx context.Context, uid int64, page, pageSize int) ([]*Memo, error)

	// ListCount 统计指定用户的备忘录数量
	ListCount(ctx context.Context, uid int64) (int64, error)
}

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByUID 根据UID获取用户
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)

	// UpdateLastSeen 更新用户最近活跃时间
	UpdateLastSeen(ctx context.Context, uid int64) error

	// ListStaleAnonymous 获取在截止时间之前再无活动的匿名用户
	ListStaleAnonymous(ctx context.Context, cutoffUnix int64) ([]*User, error)

	// Delete 物理删除用户
	Delete(ctx context.Context, uid int64) error
}

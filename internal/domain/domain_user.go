package domain

import "time"

// User 用户领域模型
// 访客首次访问即创建匿名身份，UID 为主键
type User struct {
	UID         int64
	Username    string
	IsAnonymous bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastSeenAt  time.Time
}

// HasUsername 判断用户是否有用户名
func (u *User) HasUsername() bool {
	return u.Username != ""
}

// IsStale 判断用户在给定时间之前是否再无活动
func (u *User) IsStale(cutoff time.Time) bool {
	return u.LastSeenAt.Before(cutoff)
}

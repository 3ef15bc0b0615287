package model

import "github.com/haierkeys/recipe-memo-service/pkg/timex"

const TableNameUser = "user"

// User mapped from table <user>
type User struct {
	UID         int64      `gorm:"column:uid;primaryKey" json:"uid" form:"uid"`
	Username    string     `gorm:"column:username;not null" json:"username" form:"username"`
	IsAnonymous bool       `gorm:"column:is_anonymous;default:true" json:"isAnonymous" form:"isAnonymous"`
	CreatedAt   timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt   timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
	LastSeenAt  timex.Time `gorm:"column:last_seen_at;type:datetime;index:idx_last_seen" json:"lastSeenAt" form:"lastSeenAt"`
}

// TableName User's table name
func (*User) TableName() string {
	return TableNameUser
}

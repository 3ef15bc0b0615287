package model

import "github.com/haierkeys/recipe-memo-service/pkg/timex"

const TableNameMemo = "memo"

// Memo mapped from table <memo>
type Memo struct {
	ID        int64      `gorm:"column:id;primaryKey" json:"id" form:"id"`
	RecordKey string     `gorm:"column:record_key;not null;uniqueIndex:idx_record_key" json:"recordKey" form:"recordKey"`
	UID       int64      `gorm:"column:uid;not null;index:idx_uid_updated,priority:1" json:"uid" form:"uid"`
	URL       string     `gorm:"column:url;not null" json:"url" form:"url"`
	Title     string     `gorm:"column:title;not null" json:"title" form:"title"`
	Content   string     `gorm:"column:content" json:"content" form:"content"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false;index:idx_uid_updated,priority:2" json:"updatedAt" form:"updatedAt"`
}

// TableName Memo's table name
func (*Memo) TableName() string {
	return TableNameMemo
}

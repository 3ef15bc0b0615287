// Package domain 定义领域模型和接口
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// DefaultMemoTitle 无标题备忘录的默认标题
const DefaultMemoTitle = "Untitled memo"

// Memo 菜谱备忘录领域模型
// 同一用户下以 URL 为唯一键，RecordKey 由 (UID, URL) 派生
type Memo struct {
	ID        int64
	RecordKey string
	UID       int64
	URL       string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemoRecordKey 根据用户和页面地址派生记录键
// 哈希前以长度前缀分隔两个输入，避免拼接歧义
func MemoRecordKey(uid int64, url string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d:%d:", uid, len(url))
	h.Write([]byte(url))
	return hex.EncodeToString(h.Sum(nil))
}

// NormalizeTitle 返回持久化时使用的标题，空标题落到默认值
func NormalizeTitle(title string) string {
	if title == "" {
		return DefaultMemoTitle
	}
	return title
}

// IsOwnedBy 判断备忘录是否属于指定用户
func (m *Memo) IsOwnedBy(uid int64) bool {
	return m.UID == uid
}

// IsUntitled 判断备忘录是否仍是默认标题
func (m *Memo) IsUntitled() bool {
	return m.Title == "" || m.Title == DefaultMemoTitle
}

// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/recipe-memo-service/pkg/timex"

// MemoGetRequest Request parameters for fetching the memo of a page
// 用于获取页面对应备忘录的请求参数
type MemoGetRequest struct {
	URL string `json:"url" form:"url" binding:"required,max=2048"` // Page address // 页面地址
}

// MemoSaveRequest Request parameters for creating or updating a memo
// 用于创建或更新备忘录的请求参数
type MemoSaveRequest struct {
	URL     string `json:"url" form:"url" binding:"required,max=2048"` // Page address // 页面地址
	Title   string `json:"title" form:"title" binding:"max=512"`       // Memo title // 备忘录标题
	Content string `json:"content" form:"content"`                     // Memo body // 备忘录内容
}

// MemoDeleteRequest Request parameters for deleting a memo
// 删除备忘录所需参数，URL 与 RecordKey 至少提供一个
type MemoDeleteRequest struct {
	URL       string `json:"url" form:"url" binding:"required_without=RecordKey,max=2048"` // Page address // 页面地址
	RecordKey string `json:"recordKey" form:"recordKey" binding:"omitempty,len=64"`        // Derived record key // 派生记录键
}

// MemoIntakeRequest Parameters handed over by the share sheet
// 分享面板转交的参数
type MemoIntakeRequest struct {
	Title string `json:"title" form:"title" binding:"max=512"` // Shared title // 分享标题
	Text  string `json:"text" form:"text"`                     // Shared text // 分享文本
	URL   string `json:"url" form:"url" binding:"max=2048"`    // Shared address // 分享地址
}

// ---------------- DTO / Response ----------------

// MemoDTO Memo data transfer object
// MemoDTO 备忘录数据传输对象
type MemoDTO struct {
	RecordKey string     `json:"recordKey"` // Derived record key // 派生记录键
	URL       string     `json:"url"`       // Page address // 页面地址
	Title     string     `json:"title"`     // Memo title // 备忘录标题
	Content   string     `json:"content"`   // Memo body // 备忘录内容
	UpdatedAt timex.Time `json:"updatedAt"` // Last updated time // 最后更新时间
	CreatedAt timex.Time `json:"createdAt"` // Created time // 创建时间
}

// MemoListItemDTO Memo list entry without body
// 不含正文的备忘录列表项
type MemoListItemDTO struct {
	RecordKey string     `json:"recordKey"` // Derived record key // 派生记录键
	URL       string     `json:"url"`       // Page address // 页面地址
	Title     string     `json:"title"`     // Memo title // 备忘录标题
	UpdatedAt timex.Time `json:"updatedAt"` // Last updated time // 最后更新时间
	CreatedAt timex.Time `json:"createdAt"` // Created time // 创建时间
}

// MemoIntakeDTO Editor seed built from a share hand-off
// 根据分享转交内容构建的编辑器初始数据
type MemoIntakeDTO struct {
	URL      string `json:"url"`      // Page address // 页面地址
	Title    string `json:"title"`    // Prefilled title // 预填标题
	Content  string `json:"content"`  // Prefilled body // 预填内容
	Existing bool   `json:"existing"` // Whether a stored memo was found // 是否已有存量备忘录
}

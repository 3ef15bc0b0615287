// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/recipe-memo-service/pkg/timex"

// UserLoginRequest Request parameters for resuming an existing identity
// 续用既有身份的请求参数
type UserLoginRequest struct {
	Token string `json:"token" form:"token" binding:"required"` // Authentication Token // 认证 Token
}

// ---------------- DTO / Response ----------------

// UserDTO User data transfer object
// UserDTO 用户数据传输对象
type UserDTO struct {
	UID         int64      `json:"uid"`         // User ID (primary key) // 用户唯一标识（主键）
	Username    string     `json:"username"`    // Generated guest name // 生成的访客名称
	IsAnonymous bool       `json:"isAnonymous"` // Anonymous identity flag // 匿名身份标记
	Token       string     `json:"token"`       // Authentication Token // 认证 Token
	UpdatedAt   timex.Time `json:"updatedAt"`   // Last updated time // 最后更新时间
	CreatedAt   timex.Time `json:"createdAt"`   // Account created time // 账号创建时间
}

package code

// 成功码
var (
	Success           = NewSuss(200, lang{en: "Success", zh_cn: "成功"})
	SuccessMemoSave   = NewSuss(201, lang{en: "Memo saved", zh_cn: "备忘保存成功"})
	SuccessMemoDelete = NewSuss(202, lang{en: "Memo deleted", zh_cn: "备忘删除成功"})
	SuccessLogout     = NewSuss(203, lang{en: "Logged out", zh_cn: "已退出登录"})
)

// 通用错误码
var (
	ErrorServerInternal  = NewError(10000, lang{en: "Server internal error", zh_cn: "服务内部错误"})
	ErrorInvalidParams   = NewError(10001, lang{en: "Invalid request parameters", zh_cn: "入参错误"})
	ErrorNotFoundAPI     = NewError(10002, lang{en: "API not found", zh_cn: "接口不存在"})
	ErrorTooManyRequests = NewError(10003, lang{en: "Too many requests", zh_cn: "请求过多"})
	ErrorDBQuery         = NewError(10004, lang{en: "Database query error", zh_cn: "数据库查询错误"})
)

// 身份相关错误码
var (
	ErrorNotUserAuthToken     = NewError(20001, lang{en: "Auth token missing", zh_cn: "鉴权 Token 缺失"})
	ErrorInvalidUserAuthToken = NewError(20002, lang{en: "Auth token invalid or expired", zh_cn: "鉴权 Token 无效或已过期"})
	ErrorTokenGenerate        = NewError(20003, lang{en: "Token generate failed", zh_cn: "Token 生成失败"})
	ErrorIdentityProvision    = NewError(20004, lang{en: "Anonymous identity provision failed", zh_cn: "匿名身份创建失败"})
	ErrorIdentityPending      = NewError(20005, lang{en: "Identity not resolved yet", zh_cn: "身份尚未就绪"})
	ErrorUserNotFound         = NewError(20006, lang{en: "User not found", zh_cn: "用户不存在"})
)

// 备忘相关错误码
var (
	ErrorShareMissingURL = NewError(30001, lang{en: "Shared URL missing", zh_cn: "分享的 URL 缺失"})
	ErrorMemoNotFound    = NewError(30002, lang{en: "Memo not found", zh_cn: "备忘不存在"})
	ErrorMemoNotOwned    = NewError(30003, lang{en: "Memo belongs to another user", zh_cn: "备忘归属于其他用户"})
	ErrorMemoSave        = NewError(30004, lang{en: "Memo save failed", zh_cn: "备忘保存失败"})
	ErrorMemoDelete      = NewError(30005, lang{en: "Memo delete failed", zh_cn: "备忘删除失败"})
)

package code

import (
	"fmt"
	"net/http"
)

type Code struct {
	// 状态码
	code int
	// 状态
	status bool
	// 错误消息
	Lang lang
	// 数据
	data interface{}
	// 是否含有Data
	haveData bool
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}

// NewError 注册一个失败状态码
func NewError(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss 注册一个成功状态码
func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本
func (e *Code) Clone() *Code {
	// 创建一个新的副本,而不是修改原对象
	return &Code{
		code:   e.code,
		status: e.status,
		Lang:   e.Lang,
		// 其他字段保持默认零值
		data:        nil,
		haveData:    false,
		details:     []string{},
		haveDetails: false,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

// WithDetails 附加错误详情，返回新副本
func (e *Code) WithDetails(details ...string) *Code {
	newCode := e.Clone()
	newCode.details = append(newCode.details, details...)
	newCode.haveDetails = true
	return newCode
}

// WithData 附加返回数据，返回新副本
func (e *Code) WithData(data interface{}) *Code {
	newCode := e.Clone()
	newCode.data = data
	newCode.haveData = true
	return newCode
}

// StatusCode 将业务码映射为 HTTP 状态码
func (e *Code) StatusCode() int {
	switch e.code {
	case SuccessMemoSave.Code():
		return http.StatusCreated
	case SuccessMemoDelete.Code():
		return http.StatusAccepted
	case ErrorServerInternal.Code():
		return http.StatusInternalServerError
	case ErrorInvalidParams.Code(), ErrorShareMissingURL.Code():
		return http.StatusBadRequest
	case ErrorNotUserAuthToken.Code(), ErrorInvalidUserAuthToken.Code(), ErrorIdentityPending.Code():
		return http.StatusUnauthorized
	case ErrorNotFoundAPI.Code(), ErrorMemoNotFound.Code():
		return http.StatusNotFound
	case ErrorMemoNotOwned.Code():
		return http.StatusForbidden
	case ErrorTooManyRequests.Code():
		return http.StatusTooManyRequests
	}
	return http.StatusOK
}

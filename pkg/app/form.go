package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) MapsToString() string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Key+": "+err.Message)
	}
	return strings.Join(errs, ",")
}

// BindAndValid binds the request params and validates them, translating
// validator messages with the translator attached by the lang middleware.
// BindAndValid 绑定并校验请求参数，使用语言中间件注入的翻译器翻译校验信息
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	return translateBindErr(c, c.ShouldBind(v))
}

// BindQueryAndValid binds query params only and validates them.
// Body-less requests (DELETE with a JSON content type but no payload) must not
// go through the content-type negotiated binder.
// BindQueryAndValid 只绑定并校验查询参数
// 无请求体的请求（如带 JSON Content-Type 但没有负载的 DELETE）不能走按
// Content-Type 协商的绑定器
func BindQueryAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	return translateBindErr(c, c.ShouldBindQuery(v))
}

func translateBindErr(c *gin.Context, err error) (bool, ValidErrors) {
	if err == nil {
		return true, nil
	}

	var errs ValidErrors
	v := c.Value("trans")
	trans, _ := v.(ut.Translator)
	verrs, ok := err.(val.ValidationErrors)
	if !ok {
		errs = append(errs, &ValidError{
			Key:     "body",
			Message: err.Error(),
		})
		return false, errs
	}

	for key, value := range verrs.Translate(trans) {
		errs = append(errs, &ValidError{
			Key:     key,
			Message: value,
		})
	}

	return false, errs
}

package code

import (
	"errors"
	"fmt"
)

// lang 存储状态码的英文和中文文案
type lang struct {
	en    string
	zh_cn string
}

// 全局默认语言，lang 中间件按请求切换
var lng = "en"

const FALLBACK_LNG = "en"

// GetMessage 按全局语言返回文案，缺失时回退英文
func (l lang) GetMessage() string {
	if lng == "zh_cn" && l.zh_cn != "" {
		return l.zh_cn
	}
	if l.en != "" {
		return l.en
	}
	return fmt.Sprintf("No message available for language: %s", lng)
}

// GetSupportedLanguages 返回支持的语言标识
func GetSupportedLanguages() []string {
	return []string{"en", "zh_cn"}
}

// SetGlobalDefaultLang 设置全局默认语言，不支持的语言回退英文并报错
func SetGlobalDefaultLang(language string) error {
	for _, l := range GetSupportedLanguages() {
		if language == l {
			lng = language
			return nil
		}
	}
	lng = FALLBACK_LNG
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang 获取全局默认语言
func GetGlobalDefaultLang() string {
	return lng
}

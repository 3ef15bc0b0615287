package middleware

import (
	"github.com/haierkeys/recipe-memo-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// AppInfoWithVersion 注入应用名称和版本信息（支持依赖注入）
func AppInfoWithVersion(name, version string) gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))

		c.Next()
	}
}

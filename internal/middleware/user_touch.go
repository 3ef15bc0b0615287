package middleware

import (
	"context"

	"github.com/haierkeys/recipe-memo-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// UserTouchWithFunc 认证请求完成后记录用户活跃时间
// 响应已写出，使用独立的 context，失败不影响请求结果
func UserTouchWithFunc(touch func(ctx context.Context, uid int64) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if uid := app.GetUID(c); uid > 0 {
			_ = touch(context.Background(), uid)
		}
	}
}

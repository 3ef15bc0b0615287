package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/haierkeys/recipe-memo-service/pkg/app"
	"github.com/haierkeys/recipe-memo-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 捕获处理链中的 panic，记录现场并返回统一错误响应
func RecoveryWithLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			fields := []zap.Field{
				zap.Int("status", c.Writer.Status()),
				zap.String("router", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("query", c.Request.URL.RawQuery),
				zap.String("ip", c.ClientIP()),
				zap.String("user-agent", c.Request.UserAgent()),
				zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
				zap.String("stack", string(debug.Stack())),
			}

			var errorMsg string
			switch v := r.(type) {
			case error:
				errorMsg = v.Error()
				logger.Error("Recovered from panic", append(fields, zap.Error(v))...)
			case string:
				errorMsg = v
				logger.Error("Recovered from panic", append(fields, zap.String("panic_value", v))...)
			default:
				errorMsg = fmt.Sprintf("%v", v)
				logger.Error("Recovered from unknown panic", append(fields, zap.String("panic_value", errorMsg))...)
			}

			app.NewResponse(c).ToResponse(code.ErrorServerInternal.WithDetails(errorMsg))
		}()

		c.Next()
	}
}

package api_router

import (
	"expvar"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Expvar 以 JSON 形式导出进程运行时指标
// 挂在私有路由的 /debug/vars 上
func Expvar(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")

	first := true
	fmt.Fprintf(c.Writer, "{\n")
	expvar.Do(func(kv expvar.KeyValue) {
		if !first {
			fmt.Fprintf(c.Writer, ",\n")
		}
		first = false
		if str, ok := kv.Value.(fmt.Stringer); ok {
			fmt.Fprintf(c.Writer, "%q: %s", kv.Key, str.String())
		} else {
			fmt.Fprintf(c.Writer, "%q: %v", kv.Key, kv.Value)
		}
	})
	fmt.Fprintf(c.Writer, "\n}\n")
}

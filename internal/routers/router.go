package routers

import (
	"embed"
	"net/http"
	"time"

	"github.com/haierkeys/recipe-memo-service/internal/app"
	"github.com/haierkeys/recipe-memo-service/internal/middleware"
	"github.com/haierkeys/recipe-memo-service/internal/routers/api_router"
	"github.com/haierkeys/recipe-memo-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/user",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建公共路由
// 页面外壳与 API 共用一个引擎，页面在根路径，接口在 /api 下
func NewRouter(frontendFiles embed.FS, appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	indexContent, _ := frontendFiles.ReadFile("frontend/index.html")
	shareContent, _ := frontendFiles.ReadFile("frontend/share.html")
	swContent, _ := frontendFiles.ReadFile("frontend/sw.js")
	icon192, _ := frontendFiles.ReadFile("frontend/icons/icon-192.png")
	icon512, _ := frontendFiles.ReadFile("frontend/icons/icon-512.png")

	shellHandler := api_router.NewShellHandler(appContainer)

	r := gin.New()
	r.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexContent)
	})

	// 分享面板把页面转交到这里；地址和文本都缺失时无从定位页面，退回首页
	r.GET("/share-target", func(c *gin.Context) {
		url := c.Query("url")
		text := c.Query("text")
		if url == "" && text == "" {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", shareContent)
	})

	r.GET("/manifest.json", shellHandler.Manifest)

	// Service Worker 不走强缓存，更新要立即生效
	r.GET("/sw.js", func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "application/javascript; charset=utf-8", swContent)
	})

	cacheMiddleware := func(c *gin.Context) {
		// 设置强缓存，缓存一年
		c.Header("Cache-Control", "public, s-maxage=31536000, max-age=31536000, must-revalidate")
		c.Next()
	}

	icons := r.Group("/icons", cacheMiddleware)
	{
		icons.GET("/icon-192.png", func(c *gin.Context) {
			c.Data(http.StatusOK, "image/png", icon192)
		})
		icons.GET("/icon-512.png", func(c *gin.Context) {
			c.Data(http.StatusOK, "image/png", icon512)
		})
	}

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithVersion(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(middleware.TracerConfig{
			Enabled: cfg.Tracer.Enabled,
			Header:  cfg.Tracer.Header,
		}))
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		memoHandler := api_router.NewMemoHandler(appContainer)

		api.POST("/user/session", userHandler.Session)
		api.POST("/user/login", userHandler.Login)

		// 服务端版本与健康检查（无需认证）
		api.GET("/version", shellHandler.ServerVersion)
		api.GET("/health", shellHandler.Health)

		authed := api.Group("",
			middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey),
			middleware.UserTouchWithFunc(appContainer.IdentityService.Touch),
		)
		{
			authed.POST("/user/logout", userHandler.Logout)

			authed.GET("/memo", memoHandler.Get)
			authed.GET("/memo/intake", memoHandler.Intake)
			authed.POST("/memo", memoHandler.Save)
			authed.DELETE("/memo", memoHandler.Delete)
			authed.GET("/memos", memoHandler.List)
		}
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}

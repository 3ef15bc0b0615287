package api_router

import (
	"net/http"

	"github.com/haierkeys/recipe-memo-service/internal/app"

	"github.com/gin-gonic/gin"
)

// ShellHandler 应用外壳路由处理器
// 负责 PWA 清单和服务端版本等不需要认证的接口
type ShellHandler struct {
	*Handler
}

// NewShellHandler 创建 ShellHandler 实例
func NewShellHandler(a *app.App) *ShellHandler {
	return &ShellHandler{
		Handler: NewHandler(a),
	}
}

// manifestIcon PWA 清单图标项
type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// manifestShareParams share_target 参数名映射
type manifestShareParams struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// manifestShareTarget share_target 配置
type manifestShareTarget struct {
	Action string              `json:"action"`
	Method string              `json:"method"`
	Params manifestShareParams `json:"params"`
}

// webManifest PWA 清单
type webManifest struct {
	Name            string              `json:"name"`
	ShortName       string              `json:"short_name"`
	Description     string              `json:"description"`
	StartURL        string              `json:"start_url"`
	Display         string              `json:"display"`
	BackgroundColor string              `json:"background_color"`
	ThemeColor      string              `json:"theme_color"`
	Icons           []manifestIcon      `json:"icons"`
	ShareTarget     manifestShareTarget `json:"share_target"`
}

// Manifest 输出 PWA 清单
// @Summary PWA 清单
// @Description 输出应用清单，含 share_target 配置，分享面板据此把页面转交到 /share-target
// @Tags 外壳
// @Produce json
// @Success 200 {object} webManifest "成功"
// @Router /manifest.json [get]
func (h *ShellHandler) Manifest(c *gin.Context) {
	c.JSON(http.StatusOK, webManifest{
		Name:            app.Name,
		ShortName:       "Recipe Memo",
		Description:     "Keep a private memo on any recipe page",
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      "#e8590c",
		Icons: []manifestIcon{
			{Src: "/icons/icon-192.png", Sizes: "192x192", Type: "image/png"},
			{Src: "/icons/icon-512.png", Sizes: "512x512", Type: "image/png"},
		},
		ShareTarget: manifestShareTarget{
			Action: "/share-target",
			Method: "GET",
			Params: manifestShareParams{
				Title: "title",
				Text:  "text",
				URL:   "url",
			},
		},
	})
}

// ServerVersion 输出服务端版本
// @Summary 服务端版本
// @Description 输出服务端版本信息
// @Tags 外壳
// @Produce json
// @Success 200 {object} pkgapp.VersionInfo "成功"
// @Router /api/version [get]
func (h *ShellHandler) ServerVersion(c *gin.Context) {
	c.JSON(http.StatusOK, h.App.Version())
}

// Health 健康检查
// @Summary 健康检查
// @Description 确认服务进程与数据库连接可用
// @Tags 外壳
// @Produce json
// @Success 200 {object} map[string]string "成功"
// @Router /api/health [get]
func (h *ShellHandler) Health(c *gin.Context) {
	sqlDB, err := h.App.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

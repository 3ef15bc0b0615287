package api_router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/haierkeys/recipe-memo-service/internal/app"
	"github.com/haierkeys/recipe-memo-service/internal/dao"
	pkgapp "github.com/haierkeys/recipe-memo-service/pkg/app"
	"github.com/haierkeys/recipe-memo-service/pkg/code"

	"github.com/creasty/defaults"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter 组装最小路由：内存库、默认配置、固定 uid 的认证上下文
func newTestRouter(t *testing.T, uid int64) *gin.Engine {
	t.Helper()

	cfg := new(app.AppConfig)
	require.NoError(t, defaults.Set(cfg))

	db, err := dao.NewDBEngineWithConfig(dao.DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)
	require.NoError(t, dao.New(db, nil).AutoMigrate())

	a, err := app.NewApp(cfg, zap.NewNop(), db)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_token", &pkgapp.UserEntity{UID: uid})
	})

	h := NewMemoHandler(a)
	r.GET("/api/memo", h.Get)
	r.POST("/api/memo", h.Save)
	r.DELETE("/api/memo", h.Delete)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, pkgapp.Res) {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body pkgapp.Res
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

// 前端删除请求带着 application/json 的 Content-Type 却没有请求体，
// 参数在查询串里，绑定必须按查询串处理而不是按 Content-Type 协商
func TestMemoDeleteWithJSONContentTypeAndEmptyBody(t *testing.T) {
	r := newTestRouter(t, 1)
	url := "https://example.com/recipes/hotpot"

	save := httptest.NewRequest(http.MethodPost, "/api/memo",
		strings.NewReader(`{"url":"`+url+`","title":"Hotpot","content":"soak mushrooms overnight"}`))
	save.Header.Set("Content-Type", "application/json")
	w, body := doRequest(t, r, save)
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, body.Status)

	del := httptest.NewRequest(http.MethodDelete, "/api/memo?url="+url, nil)
	del.Header.Set("Content-Type", "application/json")
	w, body = doRequest(t, r, del)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.True(t, body.Status)
	assert.Equal(t, code.SuccessMemoDelete.Code(), body.Code)

	// 已删除的备忘录查询返回 404
	get := httptest.NewRequest(http.MethodGet, "/api/memo?url="+url, nil)
	w, body = doRequest(t, r, get)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Status)
	assert.Equal(t, code.ErrorMemoNotFound.Code(), body.Code)
}

func TestMemoDeleteMissingURLReturnsInvalidParams(t *testing.T) {
	r := newTestRouter(t, 1)

	del := httptest.NewRequest(http.MethodDelete, "/api/memo", nil)
	del.Header.Set("Content-Type", "application/json")
	w, body := doRequest(t, r, del)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Status)
	assert.Equal(t, code.ErrorInvalidParams.Code(), body.Code)
}

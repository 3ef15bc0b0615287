package api_router

import (
	"github.com/haierkeys/recipe-memo-service/internal/app"
	"github.com/haierkeys/recipe-memo-service/internal/dto"
	pkgapp "github.com/haierkeys/recipe-memo-service/pkg/app"
	"github.com/haierkeys/recipe-memo-service/pkg/code"
	apperrors "github.com/haierkeys/recipe-memo-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler identity API router handler
// UserHandler 身份 API 路由处理器
// Uses App Container to inject dependencies, supports unified error handling
// 使用 App Container 注入依赖，支持统一错误处理
type UserHandler struct {
	*Handler
}

// NewUserHandler creates UserHandler instance
// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(a),
	}
}

// Session session bootstrap
// @Summary Session bootstrap
// @Description Resume the identity carried by the optional token header, or provision a fresh anonymous identity.
// @Description 续用请求头 Token 指向的身份，没有或无效时就地创建匿名身份。
// @Tags User
// @Produce json
// @Param token header string false "Auth Token"
// @Success 200 {object} pkgapp.Res{data=dto.UserDTO} "Success"
// @Router /api/user/session [post]
func (h *UserHandler) Session(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	token := c.GetHeader("authorization")
	if token == "" {
		token = c.GetHeader("Authorization")
	}
	if token == "" {
		token = c.GetHeader("token")
	}
	if token == "" {
		token = c.GetHeader("Token")
	}

	// Get request context (including Trace ID)
	// 获取请求上下文（包含 Trace ID）
	ctx := c.Request.Context()

	userDTO, err := h.App.IdentityService.Session(ctx, token, pkgapp.GetRequestIP(c))
	if err != nil {
		h.logError(ctx, "UserHandler.Session", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(userDTO))
}

// Login resume identity with an existing token
// @Summary Resume identity
// @Description Validate an existing token and re-issue it with a fresh expiry.
// @Description 校验既有 Token 并重新签发，过期时间重新计算。
// @Tags User
// @Accept json
// @Produce json
// @Param params body dto.UserLoginRequest true "Login Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.UserDTO} "Success"
// @Failure 401 {object} pkgapp.Res "Invalid Token"
// @Router /api/user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserLoginRequest{}

	// Parameter binding and validation
	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Login.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	userDTO, err := h.App.IdentityService.Login(ctx, params, pkgapp.GetRequestIP(c))
	if err != nil {
		h.logError(ctx, "UserHandler.Login", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(userDTO))
}

// Logout sign out
// @Summary Sign out
// @Description Record the sign-out and notify identity observers. The client discards its token.
// @Description 记录登出并通知身份订阅者，客户端自行丢弃 Token。
// @Tags User
// @Security UserAuthToken
// @Param token header string true "Auth Token"
// @Produce json
// @Success 200 {object} pkgapp.Res "Success"
// @Router /api/user/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.IdentityService.Logout(ctx, uid); err != nil {
		h.logError(ctx, "UserHandler.Logout", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessLogout)
}

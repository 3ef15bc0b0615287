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

// MemoHandler 备忘录 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type MemoHandler struct {
	*Handler
}

// NewMemoHandler 创建 MemoHandler 实例
func NewMemoHandler(a *app.App) *MemoHandler {
	return &MemoHandler{
		Handler: NewHandler(a),
	}
}

// Get 获取页面对应的备忘录
// @Summary 获取备忘录详情
// @Description 根据页面地址获取当前用户在该页面留下的备忘录
// @Tags 备忘录
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Param params query dto.MemoGetRequest true "获取参数"
// @Success 200 {object} pkgapp.Res{data=dto.MemoDTO} "成功"
// @Failure 404 {object} pkgapp.Res "备忘录不存在"
// @Router /api/memo [get]
func (h *MemoHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MemoGetRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("MemoHandler.Get.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("MemoHandler.Get err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	// 获取请求上下文
	ctx := c.Request.Context()

	memo, err := h.App.MemoService.Get(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "MemoHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(memo))
}

// Intake 处理分享面板转交的内容
// @Summary 分享转交
// @Description 接收分享面板转交的标题、文本和地址，返回编辑器初始数据，不落库
// @Tags 备忘录
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Param params query dto.MemoIntakeRequest true "转交参数"
// @Success 200 {object} pkgapp.Res{data=dto.MemoIntakeDTO} "成功"
// @Failure 400 {object} pkgapp.Res "地址与文本均缺失"
// @Router /api/memo/intake [get]
func (h *MemoHandler) Intake(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MemoIntakeRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("MemoHandler.Intake.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("MemoHandler.Intake err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	seed, err := h.App.MemoService.Intake(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "MemoHandler.Intake", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(seed))
}

// List 获取备忘录列表
// @Summary 获取备忘录列表
// @Description 分页获取当前用户的备忘录列表，按更新时间倒序
// @Tags 备忘录
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Param page query int false "页码"
// @Param pageSize query int false "每页数量"
// @Success 200 {object} pkgapp.Res{data=pkgapp.ListRes} "成功"
// @Router /api/memos [get]
func (h *MemoHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("MemoHandler.List err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	page := pkgapp.GetPage(c)
	pageSize := pkgapp.GetPageSizeWithConfig(c, pkgapp.PaginationConfig{
		DefaultPageSize: h.App.Config().App.DefaultPageSize,
		MaxPageSize:     h.App.Config().App.MaxPageSize,
	})

	memos, count, err := h.App.MemoService.List(ctx, uid, page, pageSize)
	if err != nil {
		h.logError(ctx, "MemoHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, memos, int(count))
}

// Save 创建或更新备忘录
// @Summary 创建或更新备忘录
// @Description 以 (用户, 页面地址) 为唯一键保存备忘录，存在则只更新标题和内容
// @Tags 备忘录
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Accept json
// @Produce json
// @Param params body dto.MemoSaveRequest true "备忘录内容"
// @Success 201 {object} pkgapp.Res{data=dto.MemoDTO} "成功"
// @Router /api/memo [post]
func (h *MemoHandler) Save(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MemoSaveRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("MemoHandler.Save.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("MemoHandler.Save err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	memo, err := h.App.MemoService.Save(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "MemoHandler.Save", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessMemoSave.WithData(memo))
}

// Delete 删除备忘录
// @Summary 删除备忘录
// @Description 删除当前用户在指定页面留下的备忘录，先回读确认归属
// @Tags 备忘录
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Param params query dto.MemoDeleteRequest true "删除参数"
// @Success 202 {object} pkgapp.Res "成功"
// @Failure 403 {object} pkgapp.Res "备忘录归属他人"
// @Failure 404 {object} pkgapp.Res "备忘录不存在"
// @Router /api/memo [delete]
func (h *MemoHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MemoDeleteRequest{}

	// DELETE 的参数在查询串里，客户端常带着无负载的 JSON Content-Type，
	// 不能按 Content-Type 协商选绑定器
	valid, errs := pkgapp.BindQueryAndValid(c, params)
	if !valid {
		h.App.Logger().Error("MemoHandler.Delete.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("MemoHandler.Delete err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.MemoService.Delete(ctx, uid, params); err != nil {
		h.logError(ctx, "MemoHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessMemoDelete)
}

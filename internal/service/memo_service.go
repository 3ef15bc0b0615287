package service

import (
	"context"
	"errors"
	"strings"

	"github.com/haierkeys/recipe-memo-service/internal/domain"
	"github.com/haierkeys/recipe-memo-service/internal/dto"
	"github.com/haierkeys/recipe-memo-service/pkg/code"
	"github.com/haierkeys/recipe-memo-service/pkg/timex"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// MemoService 定义备忘录业务服务接口
type MemoService interface {
	// Get 获取页面对应的备忘录
	Get(ctx context.Context, uid int64, params *dto.MemoGetRequest) (*dto.MemoDTO, error)

	// Save 创建或更新备忘录
	Save(ctx context.Context, uid int64, params *dto.MemoSaveRequest) (*dto.MemoDTO, error)

	// Delete 删除备忘录
	Delete(ctx context.Context, uid int64, params *dto.MemoDeleteRequest) error

	// List 分页获取备忘录列表，按更新时间倒序
	List(ctx context.Context, uid int64, page, pageSize int) ([]*dto.MemoListItemDTO, int64, error)

	// Intake 处理分享面板转交的内容，构建编辑器初始数据，不落库
	Intake(ctx context.Context, uid int64, params *dto.MemoIntakeRequest) (*dto.MemoIntakeDTO, error)
}

// memoService 实现 MemoService 接口
type memoService struct {
	memoRepo domain.MemoRepository
	sf       *singleflight.Group
	logger   *zap.Logger
	config   *ServiceConfig
}

// NewMemoService 创建 MemoService 实例
func NewMemoService(memoRepo domain.MemoRepository, logger *zap.Logger, config *ServiceConfig) MemoService {
	return &memoService{
		memoRepo: memoRepo,
		sf:       &singleflight.Group{},
		logger:   logger,
		config:   config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *memoService) domainToDTO(memo *domain.Memo) *dto.MemoDTO {
	if memo == nil {
		return nil
	}
	return &dto.MemoDTO{
		RecordKey: memo.RecordKey,
		URL:       memo.URL,
		Title:     memo.Title,
		Content:   memo.Content,
		UpdatedAt: timex.Time(memo.UpdatedAt),
		CreatedAt: timex.Time(memo.CreatedAt),
	}
}

func (s *memoService) domainToListItem(memo *domain.Memo) *dto.MemoListItemDTO {
	if memo == nil {
		return nil
	}
	return &dto.MemoListItemDTO{
		RecordKey: memo.RecordKey,
		URL:       memo.URL,
		Title:     memo.Title,
		UpdatedAt: timex.Time(memo.UpdatedAt),
		CreatedAt: timex.Time(memo.CreatedAt),
	}
}

// Get 获取页面对应的备忘录
// 同一记录键的并发读取合并为一次查询
func (s *memoService) Get(ctx context.Context, uid int64, params *dto.MemoGetRequest) (*dto.MemoDTO, error) {
	key := domain.MemoRecordKey(uid, params.URL)

	// 合并的查询可能服务多个并发调用方，不能随第一个调用方的 context 取消
	queryCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		return s.memoRepo.GetByRecordKey(queryCtx, key, uid)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorMemoNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	return s.domainToDTO(v.(*domain.Memo)), nil
}

// Save 创建或更新备忘录
// 键由 (uid, url) 派生，已存在时只改标题和内容，创建时间不动
func (s *memoService) Save(ctx context.Context, uid int64, params *dto.MemoSaveRequest) (*dto.MemoDTO, error) {
	now := timex.Now().Time()

	memo := &domain.Memo{
		RecordKey: domain.MemoRecordKey(uid, params.URL),
		UID:       uid,
		URL:       params.URL,
		Title:     domain.NormalizeTitle(strings.TrimSpace(params.Title)),
		Content:   params.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.memoRepo.Save(ctx, memo, uid)
	if err != nil {
		s.logger.Error("memo save failed",
			zap.Int64("uid", uid),
			zap.String("url", params.URL),
			zap.Error(err))
		return nil, code.ErrorMemoSave.WithDetails(err.Error())
	}

	return s.domainToDTO(saved), nil
}

// Delete 删除备忘录
// 先回读确认归属，再物理删除
func (s *memoService) Delete(ctx context.Context, uid int64, params *dto.MemoDeleteRequest) error {
	key := params.RecordKey
	if key == "" {
		key = domain.MemoRecordKey(uid, params.URL)
	}

	memo, err := s.memoRepo.GetAnyByRecordKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorMemoNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if !memo.IsOwnedBy(uid) {
		return code.ErrorMemoNotOwned
	}

	if err := s.memoRepo.Delete(ctx, key, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorMemoNotFound
		}
		s.logger.Error("memo delete failed",
			zap.Int64("uid", uid),
			zap.String("recordKey", key),
			zap.Error(err))
		return code.ErrorMemoDelete.WithDetails(err.Error())
	}
	return nil
}

// List 分页获取备忘录列表，按更新时间倒序
func (s *memoService) List(ctx context.Context, uid int64, page, pageSize int) ([]*dto.MemoListItemDTO, int64, error) {
	count, err := s.memoRepo.ListCount(ctx, uid)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	memos, err := s.memoRepo.List(ctx, uid, page, pageSize)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	list := make([]*dto.MemoListItemDTO, 0, len(memos))
	for _, m := range memos {
		list = append(list, s.domainToListItem(m))
	}
	return list, count, nil
}

// Intake 处理分享面板转交的内容
// 地址缺失时回退用文本字段，两者都没有则无法定位页面；
// 已有存量备忘录时用存量内容作为编辑器初始数据
func (s *memoService) Intake(ctx context.Context, uid int64, params *dto.MemoIntakeRequest) (*dto.MemoIntakeDTO, error) {
	url := strings.TrimSpace(params.URL)
	if url == "" {
		url = strings.TrimSpace(params.Text)
	}
	if url == "" {
		return nil, code.ErrorShareMissingURL
	}

	seed := &dto.MemoIntakeDTO{
		URL:   url,
		Title: domain.NormalizeTitle(strings.TrimSpace(params.Title)),
	}

	existing, err := s.memoRepo.GetByURL(ctx, url, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return seed, nil
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	seed.Existing = true
	seed.Title = existing.Title
	seed.Content = existing.Content
	return seed, nil
}

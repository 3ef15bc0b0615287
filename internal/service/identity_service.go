package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/haierkeys/recipe-memo-service/internal/domain"
	"github.com/haierkeys/recipe-memo-service/internal/dto"
	"github.com/haierkeys/recipe-memo-service/pkg/app"
	"github.com/haierkeys/recipe-memo-service/pkg/code"
	"github.com/haierkeys/recipe-memo-service/pkg/timex"
	"github.com/haierkeys/recipe-memo-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IdentityEventType 身份事件类型
type IdentityEventType string

const (
	IdentityProvisioned IdentityEventType = "provisioned" // 新建匿名身份
	IdentityResumed     IdentityEventType = "resumed"     // 凭既有 Token 续用
	IdentitySignedOut   IdentityEventType = "signed_out"  // 登出
)

// IdentityEvent 身份状态变更事件
type IdentityEvent struct {
	Type IdentityEventType
	UID  int64
}

// IdentityObserver 身份状态变更回调
type IdentityObserver func(event IdentityEvent)

// IdentityService 定义匿名身份业务服务接口
type IdentityService interface {
	// Session 会话引导：Token 有效则续用身份，否则新建匿名身份
	Session(ctx context.Context, token, clientIP string) (*dto.UserDTO, error)

	// Login 凭既有 Token 续用身份
	Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error)

	// Logout 登出
	Logout(ctx context.Context, uid int64) error

	// Touch 记录用户活跃
	Touch(ctx context.Context, uid int64) error

	// Subscribe 订阅身份状态变更事件
	Subscribe(observer IdentityObserver)

	// PurgeStale 清理闲置且没有任何备忘录的匿名身份，返回清理数量
	PurgeStale(ctx context.Context, retention time.Duration) (int, error)
}

// identityService 实现 IdentityService 接口
type identityService struct {
	userRepo     domain.UserRepository
	memoRepo     domain.MemoRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig

	mu        sync.Mutex
	observers []IdentityObserver
}

// NewIdentityService 创建 IdentityService 实例
func NewIdentityService(userRepo domain.UserRepository, memoRepo domain.MemoRepository, tokenManager app.TokenManager, logger *zap.Logger, config *ServiceConfig) IdentityService {
	return &identityService{
		userRepo:     userRepo,
		memoRepo:     memoRepo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *identityService) domainToDTO(user *domain.User, token string) *dto.UserDTO {
	if user == nil {
		return nil
	}
	return &dto.UserDTO{
		UID:         user.UID,
		Username:    user.Username,
		IsAnonymous: user.IsAnonymous,
		Token:       token,
		UpdatedAt:   timex.Time(user.UpdatedAt),
		CreatedAt:   timex.Time(user.CreatedAt),
	}
}

// Subscribe 订阅身份状态变更事件
func (s *identityService) Subscribe(observer IdentityObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// notify 逐个通知订阅者，回调在调用方 goroutine 里同步执行
func (s *identityService) notify(event IdentityEvent) {
	s.mu.Lock()
	observers := make([]IdentityObserver, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, observer := range observers {
		observer(event)
	}
}

// Session 会话引导
// Token 有效且用户存在则续用，否则就地创建匿名身份
func (s *identityService) Session(ctx context.Context, token, clientIP string) (*dto.UserDTO, error) {
	if token != "" {
		if entity, err := s.tokenManager.Parse(token); err == nil {
			user, err := s.userRepo.GetByUID(ctx, entity.UID)
			if err == nil {
				_ = s.userRepo.UpdateLastSeen(ctx, user.UID)
				s.notify(IdentityEvent{Type: IdentityResumed, UID: user.UID})
				return s.domainToDTO(user, token), nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, code.ErrorDBQuery.WithDetails(err.Error())
			}
			// Token 指向的用户已被清理，落回新建
		}
	}

	return s.provision(ctx, clientIP)
}

// provision 创建匿名身份并签发 Token
func (s *identityService) provision(ctx context.Context, clientIP string) (*dto.UserDTO, error) {
	now := timex.Now().Time()
	newUser := &domain.User{
		Username:    "guest-" + util.GetRandomString(8),
		IsAnonymous: true,
		CreatedAt:   now,
		UpdatedAt:   now,
		LastSeenAt:  now,
	}

	user, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		s.logger.Error("identity provision failed", zap.Error(err))
		return nil, code.ErrorIdentityProvision.WithDetails(err.Error())
	}

	token, err := s.tokenManager.Generate(user.UID, user.Username, clientIP)
	if err != nil {
		return nil, code.ErrorTokenGenerate.WithDetails(err.Error())
	}

	s.logger.Info("anonymous identity provisioned",
		zap.Int64("uid", user.UID),
		zap.String("username", user.Username))
	s.notify(IdentityEvent{Type: IdentityProvisioned, UID: user.UID})

	return s.domainToDTO(user, token), nil
}

// Login 凭既有 Token 续用身份
func (s *identityService) Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error) {
	entity, err := s.tokenManager.Parse(params.Token)
	if err != nil {
		return nil, code.ErrorInvalidUserAuthToken
	}

	user, err := s.userRepo.GetByUID(ctx, entity.UID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	// 续签，过期时间从现在重新计算
	token, err := s.tokenManager.Generate(user.UID, user.Username, clientIP)
	if err != nil {
		return nil, code.ErrorTokenGenerate.WithDetails(err.Error())
	}

	_ = s.userRepo.UpdateLastSeen(ctx, user.UID)
	s.notify(IdentityEvent{Type: IdentityResumed, UID: user.UID})

	return s.domainToDTO(user, token), nil
}

// Logout 登出
// Token 本身无法作废，服务端只记录事件并通知订阅者
func (s *identityService) Logout(ctx context.Context, uid int64) error {
	if err := s.userRepo.UpdateLastSeen(ctx, uid); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	s.notify(IdentityEvent{Type: IdentitySignedOut, UID: uid})
	return nil
}

// Touch 记录用户活跃
func (s *identityService) Touch(ctx context.Context, uid int64) error {
	return s.userRepo.UpdateLastSeen(ctx, uid)
}

// PurgeStale 清理闲置且没有任何备忘录的匿名身份
// 有存量备忘录的身份永不清理
func (s *identityService) PurgeStale(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, nil
	}

	cutoff := time.Now().Add(-retention).Unix()
	users, err := s.userRepo.ListStaleAnonymous(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, user := range users {
		count, err := s.memoRepo.ListCount(ctx, user.UID)
		if err != nil {
			return purged, err
		}
		if count > 0 {
			continue
		}
		if err := s.userRepo.Delete(ctx, user.UID); err != nil {
			return purged, err
		}
		purged++
	}

	if purged > 0 {
		s.logger.Info("stale guest identities purged", zap.Int("count", purged))
	}
	return purged, nil
}

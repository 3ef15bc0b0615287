package task

import (
	"context"
	"time"

	"github.com/haierkeys/recipe-memo-service/internal/app"

	"go.uber.org/zap"
)

// init 自动注册访客身份清理任务
func init() {
	Register(NewIdentityCleanupTask)
}

// IdentityCleanupTask 访客身份清理任务
// 定期清理超过保留期且没有任何备忘录的匿名身份
type IdentityCleanupTask struct {
	app       *app.App
	retention time.Duration
	interval  time.Duration
	firstRun  bool
}

// NewIdentityCleanupTask 创建访客身份清理任务
// 保留期未配置或为 0 时任务被禁用
func NewIdentityCleanupTask(a *app.App) (Task, error) {
	retention := a.Config().GetGuestRetention()
	if retention <= 0 {
		return nil, nil
	}

	return &IdentityCleanupTask{
		app:       a,
		retention: retention,
		interval:  a.Config().GetGuestPurgeInterval(),
		firstRun:  true,
	}, nil
}

// Name 返回任务名称
func (t *IdentityCleanupTask) Name() string {
	return "IdentityCleanupTask"
}

// Run 执行清理任务
func (t *IdentityCleanupTask) Run(ctx context.Context) error {
	status := "scheduled"
	if t.firstRun {
		status = "first-run"
		t.firstRun = false
	}

	purged, err := t.app.IdentityService.PurgeStale(ctx, t.retention)

	if err != nil {
		t.app.Logger().Error(t.Name()+" failed ["+status+"]: ", zap.Error(err))
	} else {
		t.app.Logger().Info(t.Name()+" completed successfully ["+status+"]", zap.Int("purged", purged))
	}

	return err
}

// LoopInterval 返回执行间隔
func (t *IdentityCleanupTask) LoopInterval() time.Duration {
	return t.interval
}

// IsStartupRun 是否立即执行一次
func (t *IdentityCleanupTask) IsStartupRun() bool {
	return true
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/recipe-memo-service/internal/dao"
	"github.com/haierkeys/recipe-memo-service/internal/domain"
	"github.com/haierkeys/recipe-memo-service/internal/dto"
	"github.com/haierkeys/recipe-memo-service/pkg/app"
	"github.com/haierkeys/recipe-memo-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestIdentityService(t *testing.T) (IdentityService, domain.UserRepository, domain.MemoRepository) {
	t.Helper()

	db, err := dao.NewDBEngineWithConfig(dao.DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	d := dao.New(db, nil)
	if err := d.AutoMigrate(); err != nil {
		t.Fatal(err)
	}

	userRepo := dao.NewUserRepository(d)
	memoRepo := dao.NewMemoRepository(d)
	tokenManager := app.NewTokenManager(app.TokenConfig{SecretKey: "test-secret"})

	svc := NewIdentityService(userRepo, memoRepo, tokenManager, zap.NewNop(), &ServiceConfig{})
	return svc, userRepo, memoRepo
}

func TestSessionProvisionsNewIdentity(t *testing.T) {
	svc, _, _ := newTestIdentityService(t)

	user, err := svc.Session(context.Background(), "", "127.0.0.1")
	require.NoError(t, err)

	assert.NotZero(t, user.UID)
	assert.True(t, user.IsAnonymous)
	assert.NotEmpty(t, user.Token)
	assert.Contains(t, user.Username, "guest-")
}

func TestSessionResumesExistingIdentity(t *testing.T) {
	svc, _, _ := newTestIdentityService(t)
	ctx := context.Background()

	first, err := svc.Session(ctx, "", "127.0.0.1")
	require.NoError(t, err)

	second, err := svc.Session(ctx, first.Token, "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, first.UID, second.UID)
	assert.Equal(t, first.Username, second.Username)
}

// 坏 Token 不报错，直接发新身份
func TestSessionWithGarbageTokenProvisions(t *testing.T) {
	svc, _, _ := newTestIdentityService(t)

	user, err := svc.Session(context.Background(), "not-a-jwt", "127.0.0.1")
	require.NoError(t, err)
	assert.NotZero(t, user.UID)
}

func TestLoginRefreshesToken(t *testing.T) {
	svc, _, _ := newTestIdentityService(t)
	ctx := context.Background()

	user, err := svc.Session(ctx, "", "127.0.0.1")
	require.NoError(t, err)

	resumed, err := svc.Login(ctx, &dto.UserLoginRequest{Token: user.Token}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, user.UID, resumed.UID)
	assert.NotEmpty(t, resumed.Token)
}

func TestLoginRejectsInvalidToken(t *testing.T) {
	svc, _, _ := newTestIdentityService(t)

	_, err := svc.Login(context.Background(), &dto.UserLoginRequest{Token: "bogus"}, "127.0.0.1")
	assert.ErrorIs(t, err, code.ErrorInvalidUserAuthToken)
}

func TestIdentityObserverReceivesEvents(t *testing.T) {
	svc, _, _ := newTestIdentityService(t)
	ctx := context.Background()

	var events []IdentityEvent
	svc.Subscribe(func(event IdentityEvent) {
		events = append(events, event)
	})

	user, err := svc.Session(ctx, "", "127.0.0.1")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, user.UID))

	require.Len(t, events, 2)
	assert.Equal(t, IdentityProvisioned, events[0].Type)
	assert.Equal(t, user.UID, events[0].UID)
	assert.Equal(t, IdentitySignedOut, events[1].Type)
}

// 有备忘录的身份不清理，空身份超过保留期后清理
func TestPurgeStaleKeepsOwnersOfMemos(t *testing.T) {
	svc, userRepo, memoRepo := newTestIdentityService(t)
	ctx := context.Background()

	old := time.Now().Add(-72 * time.Hour)

	holder, err := userRepo.Create(ctx, &domain.User{
		Username: "guest-holder", IsAnonymous: true,
		CreatedAt: old, UpdatedAt: old, LastSeenAt: old,
	})
	require.NoError(t, err)
	_, err = memoRepo.Save(ctx, &domain.Memo{
		RecordKey: domain.MemoRecordKey(holder.UID, "https://example.com/kept"),
		UID:       holder.UID,
		URL:       "https://example.com/kept",
		Title:     "kept",
		CreatedAt: old, UpdatedAt: old,
	}, holder.UID)
	require.NoError(t, err)

	empty, err := userRepo.Create(ctx, &domain.User{
		Username: "guest-empty", IsAnonymous: true,
		CreatedAt: old, UpdatedAt: old, LastSeenAt: old,
	})
	require.NoError(t, err)

	purged, err := svc.PurgeStale(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = userRepo.GetByUID(ctx, holder.UID)
	assert.NoError(t, err)
	_, err = userRepo.GetByUID(ctx, empty.UID)
	assert.Error(t, err)
}

func TestPurgeStaleDisabled(t *testing.T) {
	svc, _, _ := newTestIdentityService(t)

	purged, err := svc.PurgeStale(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, purged)
}

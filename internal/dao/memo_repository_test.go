package dao

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/recipe-memo-service/internal/domain"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	d := New(db, nil)
	if err := d.AutoMigrate(); err != nil {
		t.Fatal(err)
	}
	return d
}

func newTestMemo(uid int64, url string) *domain.Memo {
	now := time.Now()
	return &domain.Memo{
		RecordKey: domain.MemoRecordKey(uid, url),
		UID:       uid,
		URL:       url,
		Title:     "Braised pork",
		Content:   "brown first, then simmer 90min",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoSaveCreatesAndFetches(t *testing.T) {
	d := newTestDao(t)
	repo := NewMemoRepository(d)
	ctx := context.Background()

	memo := newTestMemo(1, "https://example.com/recipes/1")

	saved, err := repo.Save(ctx, memo, 1)

	dump.P(saved)

	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, memo.RecordKey, saved.RecordKey)
	assert.Equal(t, memo.Title, saved.Title)

	got, err := repo.GetByRecordKey(ctx, memo.RecordKey, 1)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, memo.URL, got.URL)

	byURL, err := repo.GetByURL(ctx, memo.URL, 1)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byURL.ID)
}

// 再次保存不会新增记录，也不会改动创建时间和 URL
func TestMemoSaveUpdatesInPlace(t *testing.T) {
	d := newTestDao(t)
	repo := NewMemoRepository(d)
	ctx := context.Background()

	memo := newTestMemo(1, "https://example.com/recipes/2")
	first, err := repo.Save(ctx, memo, 1)
	require.NoError(t, err)

	memo.Title = "Braised pork v2"
	memo.Content = "add star anise"
	memo.UpdatedAt = memo.UpdatedAt.Add(2 * time.Second)

	second, err := repo.Save(ctx, memo, 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Braised pork v2", second.Title)
	assert.Equal(t, "add star anise", second.Content)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	count, err := repo.ListCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoGetMissingReturnsNotFound(t *testing.T) {
	d := newTestDao(t)
	repo := NewMemoRepository(d)

	_, err := repo.GetByURL(context.Background(), "https://example.com/none", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemoDelete(t *testing.T) {
	d := newTestDao(t)
	repo := NewMemoRepository(d)
	ctx := context.Background()

	memo := newTestMemo(1, "https://example.com/recipes/3")
	_, err := repo.Save(ctx, memo, 1)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, memo.RecordKey, 1))

	_, err = repo.GetByRecordKey(ctx, memo.RecordKey, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 已删除的记录再删一次
	err = repo.Delete(ctx, memo.RecordKey, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// 其他用户的记录不可见，也删不掉
func TestMemoOwnerScoping(t *testing.T) {
	d := newTestDao(t)
	repo := NewMemoRepository(d)
	ctx := context.Background()

	memo := newTestMemo(1, "https://example.com/recipes/4")
	_, err := repo.Save(ctx, memo, 1)
	require.NoError(t, err)

	_, err = repo.GetByRecordKey(ctx, memo.RecordKey, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(ctx, memo.RecordKey, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := repo.ListCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoListOrderedByUpdatedAtDesc(t *testing.T) {
	d := newTestDao(t)
	repo := NewMemoRepository(d)
	ctx := context.Background()

	base := time.Now().Truncate(time.Second)
	urls := []string{
		"https://example.com/recipes/a",
		"https://example.com/recipes/b",
		"https://example.com/recipes/c",
	}
	for i, url := range urls {
		m := newTestMemo(1, url)
		m.CreatedAt = base.Add(time.Duration(i) * time.Second)
		m.UpdatedAt = m.CreatedAt
		_, err := repo.Save(ctx, m, 1)
		require.NoError(t, err)
	}

	// 更新第一条，它应当排到最前面
	first := newTestMemo(1, urls[0])
	first.UpdatedAt = base.Add(time.Minute)
	_, err := repo.Save(ctx, first, 1)
	require.NoError(t, err)

	list, err := repo.List(ctx, 1, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, urls[0], list[0].URL)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].UpdatedAt.Before(list[i].UpdatedAt))
	}
}

func TestUserRepositoryLifecycle(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	now := time.Now()
	created, err := repo.Create(ctx, &domain.User{
		Username:    "guest-7f3a",
		IsAnonymous: true,
		CreatedAt:   now,
		UpdatedAt:   now,
		LastSeenAt:  now,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.UID)

	got, err := repo.GetByUID(ctx, created.UID)
	require.NoError(t, err)
	assert.Equal(t, "guest-7f3a", got.Username)
	assert.True(t, got.IsAnonymous)

	require.NoError(t, repo.UpdateLastSeen(ctx, created.UID))

	require.NoError(t, repo.Delete(ctx, created.UID))
	_, err = repo.GetByUID(ctx, created.UID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListStaleAnonymous(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	stale, err := repo.Create(ctx, &domain.User{
		Username:    "guest-old",
		IsAnonymous: true,
		CreatedAt:   old,
		UpdatedAt:   old,
		LastSeenAt:  old,
	})
	require.NoError(t, err)

	fresh := time.Now()
	_, err = repo.Create(ctx, &domain.User{
		Username:    "guest-new",
		IsAnonymous: true,
		CreatedAt:   fresh,
		UpdatedAt:   fresh,
		LastSeenAt:  fresh,
	})
	require.NoError(t, err)

	users, err := repo.ListStaleAnonymous(ctx, time.Now().Add(-24*time.Hour).Unix())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, stale.UID, users[0].UID)
}

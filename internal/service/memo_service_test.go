package service

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/recipe-memo-service/internal/dao"
	"github.com/haierkeys/recipe-memo-service/internal/domain"
	"github.com/haierkeys/recipe-memo-service/internal/dto"
	"github.com/haierkeys/recipe-memo-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMemoService(t *testing.T) (MemoService, domain.MemoRepository) {
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

	repo := dao.NewMemoRepository(d)
	return NewMemoService(repo, zap.NewNop(), &ServiceConfig{}), repo
}

func TestMemoSaveThenGet(t *testing.T) {
	svc, _ := newTestMemoService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{
		URL:     "https://example.com/recipes/miso-soup",
		Title:   "Miso soup",
		Content: "dashi first",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MemoRecordKey(1, "https://example.com/recipes/miso-soup"), saved.RecordKey)

	// 首次持久化时创建时间与更新时间一致
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

	got, err := svc.Get(ctx, 1, &dto.MemoGetRequest{URL: "https://example.com/recipes/miso-soup"})
	require.NoError(t, err)
	assert.Equal(t, "Miso soup", got.Title)
	assert.Equal(t, "dashi first", got.Content)
}

// 分享转交 -> 保存 -> 读取的完整链路：
// 转交只生成编辑器初始数据，保存后才能读到，标题与内容取保存时的值
func TestMemoIntakeSaveGetFlow(t *testing.T) {
	svc, _ := newTestMemoService(t)
	ctx := context.Background()

	url := "https://example.com/recipes/gyoza"

	seed, err := svc.Intake(ctx, 1, &dto.MemoIntakeRequest{URL: url, Title: "Gyoza"})
	require.NoError(t, err)
	assert.False(t, seed.Existing)
	assert.Equal(t, "Gyoza", seed.Title)

	// 转交后尚未落库
	_, err = svc.Get(ctx, 1, &dto.MemoGetRequest{URL: url})
	assert.ErrorIs(t, err, code.ErrorMemoNotFound)

	saved, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{
		URL:     seed.URL,
		Title:   seed.Title,
		Content: "cabbage, not hakusai",
	})
	require.NoError(t, err)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

	got, err := svc.Get(ctx, 1, &dto.MemoGetRequest{URL: url})
	require.NoError(t, err)
	assert.Equal(t, "Gyoza", got.Title)
	assert.Equal(t, "cabbage, not hakusai", got.Content)
}

// 合并的查询不随首个调用方的 context 取消
func TestMemoGetWithCancelledContext(t *testing.T) {
	svc, _ := newTestMemoService(t)

	url := "https://example.com/recipes/curry"
	_, err := svc.Save(context.Background(), 1, &dto.MemoSaveRequest{URL: url, Title: "Curry", Content: "bloom the spices"})
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := svc.Get(cancelled, 1, &dto.MemoGetRequest{URL: url})
	require.NoError(t, err)
	assert.Equal(t, "Curry", got.Title)
}

func TestMemoGetMissing(t *testing.T) {
	svc, _ := newTestMemoService(t)

	_, err := svc.Get(context.Background(), 1, &dto.MemoGetRequest{URL: "https://example.com/none"})
	assert.ErrorIs(t, err, code.ErrorMemoNotFound)
}

// 重复保存同一 URL 只会留下一条记录，且创建时间不变
func TestMemoSaveUpsert(t *testing.T) {
	svc, repo := newTestMemoService(t)
	ctx := context.Background()

	url := "https://example.com/recipes/ramen"
	first, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{URL: url, Title: "Ramen", Content: "v1"})
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	second, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{URL: url, Title: "Ramen", Content: "v2"})
	require.NoError(t, err)

	assert.Equal(t, first.RecordKey, second.RecordKey)
	assert.Equal(t, "v2", second.Content)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	count, err := repo.ListCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoSaveDefaultTitle(t *testing.T) {
	svc, _ := newTestMemoService(t)

	saved, err := svc.Save(context.Background(), 1, &dto.MemoSaveRequest{
		URL:   "https://example.com/recipes/untitled",
		Title: "   ",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMemoTitle, saved.Title)
}

func TestMemoDelete(t *testing.T) {
	svc, _ := newTestMemoService(t)
	ctx := context.Background()

	url := "https://example.com/recipes/curry"
	_, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{URL: url, Title: "Curry"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, &dto.MemoDeleteRequest{URL: url}))

	_, err = svc.Get(ctx, 1, &dto.MemoGetRequest{URL: url})
	assert.ErrorIs(t, err, code.ErrorMemoNotFound)

	err = svc.Delete(ctx, 1, &dto.MemoDeleteRequest{URL: url})
	assert.ErrorIs(t, err, code.ErrorMemoNotFound)
}

// 非归属用户的删除被拒绝，记录保留
func TestMemoDeleteNotOwned(t *testing.T) {
	svc, repo := newTestMemoService(t)
	ctx := context.Background()

	url := "https://example.com/recipes/gyoza"
	saved, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{URL: url, Title: "Gyoza"})
	require.NoError(t, err)

	err = svc.Delete(ctx, 2, &dto.MemoDeleteRequest{RecordKey: saved.RecordKey})
	assert.ErrorIs(t, err, code.ErrorMemoNotOwned)

	count, err := repo.ListCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// 不同用户各自有独立的备忘录空间
func TestMemoPerUserIsolation(t *testing.T) {
	svc, _ := newTestMemoService(t)
	ctx := context.Background()

	url := "https://example.com/recipes/shared-page"
	_, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{URL: url, Title: "Mine"})
	require.NoError(t, err)
	_, err = svc.Save(ctx, 2, &dto.MemoSaveRequest{URL: url, Title: "Yours"})
	require.NoError(t, err)

	mine, err := svc.Get(ctx, 1, &dto.MemoGetRequest{URL: url})
	require.NoError(t, err)
	yours, err := svc.Get(ctx, 2, &dto.MemoGetRequest{URL: url})
	require.NoError(t, err)

	assert.Equal(t, "Mine", mine.Title)
	assert.Equal(t, "Yours", yours.Title)
	assert.NotEqual(t, mine.RecordKey, yours.RecordKey)
}

func TestMemoListOrdering(t *testing.T) {
	svc, _ := newTestMemoService(t)
	ctx := context.Background()

	urls := []string{
		"https://example.com/recipes/1",
		"https://example.com/recipes/2",
		"https://example.com/recipes/3",
	}
	for _, url := range urls {
		_, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{URL: url, Title: url})
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond)
	}

	// 重新保存第一条，它应当排到最前面
	_, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{URL: urls[0], Title: "bumped"})
	require.NoError(t, err)

	list, count, err := svc.List(ctx, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.Len(t, list, 3)

	assert.Equal(t, urls[0], list[0].URL)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].UpdatedAt.Time().Before(list[i].UpdatedAt.Time()))
	}
}

func TestMemoIntakeNewPage(t *testing.T) {
	svc, _ := newTestMemoService(t)

	seed, err := svc.Intake(context.Background(), 1, &dto.MemoIntakeRequest{
		Title: "Paella",
		URL:   "https://example.com/recipes/paella",
	})
	require.NoError(t, err)

	assert.False(t, seed.Existing)
	assert.Equal(t, "Paella", seed.Title)
	assert.Equal(t, "https://example.com/recipes/paella", seed.URL)
	assert.Empty(t, seed.Content)

	// 转交不落库
	_, err = svc.Get(context.Background(), 1, &dto.MemoGetRequest{URL: seed.URL})
	assert.ErrorIs(t, err, code.ErrorMemoNotFound)
}

// 地址缺失时回退用文本字段
func TestMemoIntakeTextFallback(t *testing.T) {
	svc, _ := newTestMemoService(t)

	seed, err := svc.Intake(context.Background(), 1, &dto.MemoIntakeRequest{
		Text: "https://example.com/recipes/tacos",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/recipes/tacos", seed.URL)
	assert.Equal(t, domain.DefaultMemoTitle, seed.Title)
}

func TestMemoIntakeMissingURL(t *testing.T) {
	svc, _ := newTestMemoService(t)

	_, err := svc.Intake(context.Background(), 1, &dto.MemoIntakeRequest{Title: "no link"})
	assert.ErrorIs(t, err, code.ErrorShareMissingURL)
}

func TestMemoIntakeExistingMemo(t *testing.T) {
	svc, _ := newTestMemoService(t)
	ctx := context.Background()

	url := "https://example.com/recipes/pho"
	_, err := svc.Save(ctx, 1, &dto.MemoSaveRequest{URL: url, Title: "Pho", Content: "charred onion"})
	require.NoError(t, err)

	seed, err := svc.Intake(ctx, 1, &dto.MemoIntakeRequest{Title: "Pho (shared again)", URL: url})
	require.NoError(t, err)

	assert.True(t, seed.Existing)
	assert.Equal(t, "Pho", seed.Title)
	assert.Equal(t, "charred onion", seed.Content)
}

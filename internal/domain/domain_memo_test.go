package domain

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// 验证记录键的格式与确定性

func TestMemoRecordKey_Format(t *testing.T) {
	key := MemoRecordKey(1, "https://example.com/recipe/42")

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), key)
	assert.Equal(t, key, MemoRecordKey(1, "https://example.com/recipe/42"))
}

func TestMemoRecordKey_DiffersByOwnerAndURL(t *testing.T) {
	assert.NotEqual(t,
		MemoRecordKey(1, "https://example.com/a"),
		MemoRecordKey(2, "https://example.com/a"))
	assert.NotEqual(t,
		MemoRecordKey(1, "https://example.com/a"),
		MemoRecordKey(1, "https://example.com/b"))
}

// 验证不同 (uid, url) 输入不会派生出相同的记录键

func TestPropertyRecordKeyInjective(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("distinct inputs yield distinct keys", prop.ForAll(
		func(uidA, uidB int64, urlA, urlB string) bool {
			if uidA == uidB && urlA == urlB {
				return MemoRecordKey(uidA, urlA) == MemoRecordKey(uidB, urlB)
			}
			return MemoRecordKey(uidA, urlA) != MemoRecordKey(uidB, urlB)
		},
		gen.Int64Range(1, 1_000_000),
		gen.Int64Range(1, 1_000_000),
		gen.AnyString(),
		gen.AnyString(),
	))

	// 拼接歧义：uid 的十进制后缀挪进 url 也不能撞键
	properties.Property("length prefix prevents boundary shifts", prop.ForAll(
		func(uid int64, url string) bool {
			return MemoRecordKey(uid*10+1, url) != MemoRecordKey(uid, "1"+url)
		},
		gen.Int64Range(1, 1_000_000),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, DefaultMemoTitle, NormalizeTitle(""))
	assert.Equal(t, "Carbonara", NormalizeTitle("Carbonara"))
}

func TestMemoIsOwnedBy(t *testing.T) {
	m := &Memo{UID: 7}
	assert.True(t, m.IsOwnedBy(7))
	assert.False(t, m.IsOwnedBy(8))
}

package code

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 业务码到 HTTP 状态码的映射
// 写入类成功码返回 201/202，其余成功码默认 200
func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		code *Code
		want int
	}{
		{"save", SuccessMemoSave, http.StatusCreated},
		{"delete", SuccessMemoDelete, http.StatusAccepted},
		{"success", Success, http.StatusOK},
		{"logout", SuccessLogout, http.StatusOK},
		{"internal", ErrorServerInternal, http.StatusInternalServerError},
		{"invalid-params", ErrorInvalidParams, http.StatusBadRequest},
		{"share-missing-url", ErrorShareMissingURL, http.StatusBadRequest},
		{"no-token", ErrorNotUserAuthToken, http.StatusUnauthorized},
		{"bad-token", ErrorInvalidUserAuthToken, http.StatusUnauthorized},
		{"identity-pending", ErrorIdentityPending, http.StatusUnauthorized},
		{"not-found-api", ErrorNotFoundAPI, http.StatusNotFound},
		{"memo-not-found", ErrorMemoNotFound, http.StatusNotFound},
		{"memo-not-owned", ErrorMemoNotOwned, http.StatusForbidden},
		{"too-many-requests", ErrorTooManyRequests, http.StatusTooManyRequests},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.code.StatusCode())
		})
	}
}

// WithData 和 WithDetails 返回副本，状态码映射不受影响
func TestStatusCodeSurvivesClone(t *testing.T) {
	assert.Equal(t, http.StatusCreated, SuccessMemoSave.WithData("x").StatusCode())
	assert.Equal(t, http.StatusNotFound, ErrorMemoNotFound.WithDetails("gone").StatusCode())
}

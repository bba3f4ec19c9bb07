// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vocab_trainer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// anyCtx はハンドラが渡すリクエストコンテキストのマッチャです
var anyCtx = mock.Anything

// createRequest はJSONボディ付きのテストリクエストを作成します
func createRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// assertErrorResponse はエラーレスポンスの構造とコードを検証します
func assertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, wantCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "Failed to unmarshal error response body")
	assert.Equal(t, wantCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
}

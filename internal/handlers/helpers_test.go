// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// createRequest は開発用認証ヘッダー付きのテストリクエストを組み立てます
func createRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Actor-ID", "reviewer-1")
	req.Header.Set("X-Actor-Name", "検証 太郎")
	req.Header.Set("X-Actor-Role", "editor")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

//go:build !integration

// helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"go_vocab_mastery/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: テスト用ロガー (出力を捨てる) ---
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- ヘルパー: JSONボディ付きリクエストの作成 ---
func newJsonRequest(t *testing.T, method string, target string, body interface{}) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: 学習者IDをコンテキストに設定 ---
func contextWithLearner(ctx context.Context, learnerID uuid.UUID) context.Context {
	return context.WithValue(ctx, model.LearnerIDKey, learnerID)
}

// --- ヘルパー: chi の RouteContext にURLパラメータを設定 ---
func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

// --- ヘルパー: エラーレスポンスのデコード ---
func decodeErrorResponse(t *testing.T, body *bytes.Buffer) model.APIErrorResponse {
	t.Helper()
	var errResp model.APIErrorResponse
	err := json.Unmarshal(body.Bytes(), &errResp)
	require.NoError(t, err, "error response should be valid JSON: %s", body.String())
	return errResp
}

// internal/middleware/learner.go
package middleware

import (
	"context"
	"net/http"

	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/webutil"

	"github.com/google/uuid"
)

// LearnerContextMiddleware は X-Learner-ID ヘッダーからUUIDを抽出し、
// コンテキストに設定します。学習者の認証自体はAPIゲートウェイ側の責務で、
// ここではヘッダーの存在と形式のみを検証します。
func LearnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		learnerIDStr := r.Header.Get("X-Learner-ID")
		if learnerIDStr == "" {
			logger.Warn("Missing X-Learner-ID header", "path", r.URL.Path)
			webutil.HandleError(w, logger, model.NewAppError(
				"UNAUTHORIZED",
				"X-Learner-ID ヘッダーが指定されていません。",
				"",
				model.ErrForbidden,
			))
			return
		}

		learnerID, err := uuid.Parse(learnerIDStr)
		if err != nil {
			logger.Warn("Invalid X-Learner-ID format", "value", learnerIDStr)
			webutil.HandleError(w, logger, model.NewAppError(
				"UNAUTHORIZED",
				"X-Learner-ID の形式が不正です。",
				"",
				model.ErrForbidden,
			))
			return
		}

		// コンテキストに学習者IDをセット
		ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetLearnerID はコンテキストから学習者IDを取得します。
func GetLearnerID(ctx context.Context) (uuid.UUID, bool) {
	learnerID, ok := ctx.Value(model.LearnerIDKey).(uuid.UUID)
	return learnerID, ok
}

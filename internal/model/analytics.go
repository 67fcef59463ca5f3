// internal/model/analytics.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WordAccuracy は1単語分の集計結果です。
type WordAccuracy struct {
	WordID        uuid.UUID `json:"word_id"`
	Term          string    `json:"term,omitempty"`
	Attempts      int       `json:"attempts"`
	Correct       int       `json:"correct"`
	Accuracy      float64   `json:"accuracy"` // 0.0 - 1.0
	LastAttemptAt time.Time `json:"last_attempt_at"`
}

// AnalyticsSnapshot はフィルタ済み解答履歴に対する集計スナップショットです。
// キャッシュ専用の派生データであり、常に AttemptRecord 履歴から再生成できます。
// 手編集は想定しません。
type AnalyticsSnapshot struct {
	TotalWords        int            `json:"total_words"` // 1回でも解答された単語数
	WeakCount         int            `json:"weak_count"`
	StrongCount       int            `json:"strong_count"`
	AverageAccuracy   float64        `json:"average_accuracy"`
	WeakWords         []WordAccuracy `json:"weak_words"`
	StrongWords       []WordAccuracy `json:"strong_words"`
	RecommendedReview []uuid.UUID    `json:"recommended_review"` // 復習キュー（期限切れ ∩ フィルタ結果）
}

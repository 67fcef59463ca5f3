// internal/model/attempt.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GameMode は出題モードを表すクローズドな列挙型です。
// 文字列キーのルックアップではなく型で扱うことで、モード追加時に
// コンパイル時チェックが効くようにしています。
type GameMode string

const (
	ModeLearn          GameMode = "learn"
	ModeRecall         GameMode = "recall"
	ModeSpeed          GameMode = "speed"
	ModeMultipleChoice GameMode = "multiple_choice"
	ModeListening      GameMode = "listening"
	ModeDictation      GameMode = "dictation"
	ModeCloze          GameMode = "cloze"
	ModeFlashcard      GameMode = "flashcard"
	ModeMatch          GameMode = "match"
	ModeMixed          GameMode = "mixed"
)

// AllGameModes は既知モードの一覧です（設定のデフォルト構築などに使用）。
var AllGameModes = []GameMode{
	ModeLearn, ModeRecall, ModeSpeed, ModeMultipleChoice, ModeListening,
	ModeDictation, ModeCloze, ModeFlashcard, ModeMatch, ModeMixed,
}

// ParseGameMode は文字列をGameModeに変換します。
// 未知の文字列は ModeLearn にフォールバックし、ok=false を返します。
// モードは省略可能なフィールドなのでエラーにはしません。
func ParseGameMode(s string) (GameMode, bool) {
	switch GameMode(s) {
	case ModeLearn, ModeRecall, ModeSpeed, ModeMultipleChoice, ModeListening,
		ModeDictation, ModeCloze, ModeFlashcard, ModeMatch, ModeMixed:
		return GameMode(s), true
	case "":
		return ModeLearn, true // 省略時のデフォルト
	default:
		return ModeLearn, false
	}
}

// AttemptRecord は1回の学習インタラクションの不変な事実を表します。
// 追記専用であり、更新・削除はしません（スケジューリング履歴と分析の両方が壊れるため）。
type AttemptRecord struct {
	AttemptID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	LearnerID         uuid.UUID `gorm:"type:uuid;not null;index:idx_learner_word_time" json:"-"`
	WordID            uuid.UUID `gorm:"type:uuid;not null;index:idx_learner_word_time" json:"word_id"`
	OccurredAt        time.Time `gorm:"not null;index:idx_learner_word_time" json:"occurred_at"` // クライアント申告のUTCタイムスタンプ
	WasCorrect        bool      `gorm:"not null" json:"was_correct"`
	ResponseLatencyMs int64     `gorm:"not null" json:"response_latency_ms"`
	HintUsed          bool      `gorm:"not null" json:"hint_used"`
	Mode              GameMode  `gorm:"not null" json:"mode"`
	StreakCount       int       `gorm:"not null;default:0" json:"streak_count"` // 解答時点のストリーク長
	CreatedAt         time.Time `json:"created_at"`

	// 関連 (Preload用)
	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (AttemptRecord) TableName() string {
	return "attempt_records"
}

// 解答送信リクエストDTO
type PostAttemptRequest struct {
	WordID            uuid.UUID `json:"word_id" validate:"required"`
	OccurredAt        time.Time `json:"occurred_at" validate:"required"`
	WasCorrect        *bool     `json:"was_correct" validate:"required"`
	ResponseLatencyMs *int64    `json:"response_latency_ms" validate:"required"` // 品質スコアに必須のためデフォルト補完しない
	HintUsed          bool      `json:"hint_used"`
	Mode              string    `json:"mode"` // 省略可（learn にフォールバック）
	StreakCount       int       `json:"streak_count" validate:"gte=0"`
}

// AttemptResultResponse は解答送信のレスポンスDTOです。
type AttemptResultResponse struct {
	AttemptID    uuid.UUID  `json:"attempt_id"`
	Applied      bool       `json:"applied"` // false = 古い記録としてスキップ（StaleRecordIgnored）
	Gem          *GemAward  `json:"gem,omitempty"`
	MasteryLevel int        `json:"mastery_level"`
	Stage        string     `json:"stage"`
	NextDueAt    *time.Time `json:"next_due_at,omitempty"`
}

// maxClockSkew はクライアント時計の許容ずれです。これを超えて
// 未来のタイムスタンプを持つ記録は不正入力として拒否します。
const maxClockSkew = 5 * time.Minute

// NewAttemptRecord はリクエストを検証し、正規化された記録を生成します。
// 隠れた状態を持たない入力の純関数です（AttemptRecorderの境界）。
// 補正（サイレントな値の書き換え）は行わず、不正は必ずエラーで返します。
func NewAttemptRecord(learnerID uuid.UUID, req *PostAttemptRequest, now time.Time) (*AttemptRecord, error) {
	if req == nil {
		return nil, NewAppError("VALIDATION_ERROR", "リクエストが空です。", "", ErrInvalidInput)
	}
	if learnerID == uuid.Nil {
		return nil, NewAppError("VALIDATION_ERROR", "学習者IDが指定されていません。", "learner_id", ErrInvalidInput)
	}
	if req.WordID == uuid.Nil {
		return nil, NewAppError("VALIDATION_ERROR", "単語IDが指定されていません。", "word_id", ErrInvalidInput)
	}
	if req.WasCorrect == nil {
		return nil, NewAppError("VALIDATION_ERROR", "回答の正誤は必須項目です。", "was_correct", ErrInvalidInput)
	}
	if req.ResponseLatencyMs == nil {
		return nil, NewAppError("VALIDATION_ERROR", "解答時間は必須項目です。", "response_latency_ms", ErrInvalidInput)
	}
	if *req.ResponseLatencyMs < 0 {
		return nil, NewAppError("VALIDATION_ERROR", "解答時間が負の値です。", "response_latency_ms", ErrInvalidInput)
	}
	if req.OccurredAt.IsZero() {
		return nil, NewAppError("VALIDATION_ERROR", "発生時刻は必須項目です。", "occurred_at", ErrInvalidInput)
	}
	if req.OccurredAt.After(now.Add(maxClockSkew)) {
		return nil, NewAppError("VALIDATION_ERROR", "発生時刻が未来を指しています。", "occurred_at", ErrInvalidInput)
	}
	if req.StreakCount < 0 {
		return nil, NewAppError("VALIDATION_ERROR", "ストリーク数が負の値です。", "streak_count", ErrInvalidInput)
	}

	mode, _ := ParseGameMode(req.Mode)

	return &AttemptRecord{
		AttemptID:         uuid.New(),
		LearnerID:         learnerID,
		WordID:            req.WordID,
		OccurredAt:        req.OccurredAt.UTC(),
		WasCorrect:        *req.WasCorrect,
		ResponseLatencyMs: *req.ResponseLatencyMs,
		HintUsed:          req.HintUsed,
		Mode:              mode,
		StreakCount:       req.StreakCount,
	}, nil
}

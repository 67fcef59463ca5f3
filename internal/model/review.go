// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DueWordResponse は復習対象単語リストのレスポンスDTO
type DueWordResponse struct {
	WordID       uuid.UUID `json:"word_id"`
	Term         string    `json:"term"`
	Translation  string    `json:"translation"` // 正解表示用に含める
	Language     string    `json:"language"`
	Category     string    `json:"category,omitempty"`
	MasteryLevel int       `json:"mastery_level"`
	Stage        string    `json:"stage"`
	NextDueAt    time.Time `json:"next_due_at"`
}

// DueWordsCountResponse は復習対象単語数のレスポンスDTO
type DueWordsCountResponse struct {
	Count int64 `json:"count"`
}

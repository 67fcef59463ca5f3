// internal/model/mastery.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxMasteryLevel は習熟レベルの上限です。
const MaxMasteryLevel = 5

// MasteryStage は習熟レベルから導出されるステージ名です。
type MasteryStage string

const (
	StageNew      MasteryStage = "new"      // level 0
	StageLearning MasteryStage = "learning" // level 1..2
	StageReview   MasteryStage = "review"   // level 3..4
	StageMastered MasteryStage = "mastered" // level 5
)

// MasteryState は (学習者, 単語) ごとの習熟・スケジューリング状態を表します。
// 初回の解答時に作成され、以後はスケジューラだけが更新します。
// 学習者アカウントが存在する限り削除されません。
type MasteryState struct {
	StateID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	LearnerID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_learner_word,unique" json:"-"` // 複合ユニークインデックスの一部
	WordID             uuid.UUID  `gorm:"type:uuid;not null;index:idx_learner_word,unique" json:"word_id"`
	MasteryLevel       int        `gorm:"not null;default:0" json:"mastery_level"`
	SrsIntervalDays    float64    `gorm:"not null;default:1" json:"srs_interval_days"`
	NextDueAt          time.Time  `gorm:"not null;index" json:"next_due_at"`
	ConsecutiveCorrect int        `gorm:"not null;default:0" json:"consecutive_correct"`
	LastReviewedAt     *time.Time `json:"last_reviewed_at,omitempty"`
	CreatedAt          time.Time  `json:"-"`
	UpdatedAt          time.Time  `json:"-"`

	// 関連 (Preload用)
	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (MasteryState) TableName() string {
	return "mastery_states"
}

// Stage は現在のレベルに対応するステージを返します。
func (s *MasteryState) Stage() MasteryStage {
	switch {
	case s.MasteryLevel <= 0:
		return StageNew
	case s.MasteryLevel <= 2:
		return StageLearning
	case s.MasteryLevel < MaxMasteryLevel:
		return StageReview
	default:
		return StageMastered
	}
}

// IsDue は now 時点で復習期限を過ぎているかを返します。
func (s *MasteryState) IsDue(now time.Time) bool {
	return !s.NextDueAt.After(now)
}

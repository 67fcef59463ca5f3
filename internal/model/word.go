// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word は学習対象の語彙アイテムを表します
type Word struct {
	WordID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	Term        string         `gorm:"not null;index" json:"term"`     // 原語（出題される側）
	Translation string         `gorm:"not null" json:"translation"`    // 訳語（解答される側）
	Language    string         `gorm:"not null;index" json:"language"` // 対象言語コード (例: "es", "fr")
	Category    string         `gorm:"index" json:"category"`          // カテゴリ (例: "food")
	Subcategory string         `json:"subcategory,omitempty"`          // サブカテゴリ (例: "fruit")
	ExampleText string         `json:"example_text,omitempty"`         // 例文（任意）
	AudioURL    string         `json:"audio_url,omitempty"`            // 発音音声アセットへの参照（任意）
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	MasteryStates []MasteryState `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	Term        string `json:"term" validate:"required"`
	Translation string `json:"translation" validate:"required"`
	Language    string `json:"language" validate:"required,min=2,max=8"`
	Category    string `json:"category" validate:"omitempty,max=64"`
	Subcategory string `json:"subcategory" validate:"omitempty,max=64"`
	ExampleText string `json:"example_text" validate:"omitempty,max=512"`
	AudioURL    string `json:"audio_url" validate:"omitempty,url"`
}

// 単語更新（全体）リクエストDTO
type PutWordRequest struct {
	Term        string `json:"term" validate:"required"`
	Translation string `json:"translation" validate:"required"`
	Language    string `json:"language" validate:"required,min=2,max=8"`
	Category    string `json:"category" validate:"omitempty,max=64"`
	Subcategory string `json:"subcategory" validate:"omitempty,max=64"`
	ExampleText string `json:"example_text" validate:"omitempty,max=512"`
	AudioURL    string `json:"audio_url" validate:"omitempty,url"`
}

// 単語更新（部分）リクエストDTO
type PatchWordRequest struct {
	Term        *string `json:"term,omitempty" validate:"omitempty,min=1"` // omitempty を付けるとJSONでnilの場合省略される
	Translation *string `json:"translation,omitempty" validate:"omitempty,min=1"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=64"`
	Subcategory *string `json:"subcategory,omitempty" validate:"omitempty,max=64"`
	ExampleText *string `json:"example_text,omitempty" validate:"omitempty,max=512"`
	AudioURL    *string `json:"audio_url,omitempty" validate:"omitempty,url"`
}

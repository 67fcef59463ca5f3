// internal/model/gem.go
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GemRarity はジェムのレアリティ階級です。値が大きいほど上位です。
type GemRarity int

const (
	RarityCommon GemRarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"common", "uncommon", "rare", "epic", "legendary"}

func (r GemRarity) String() string {
	if r < RarityCommon || r > RarityLegendary {
		return fmt.Sprintf("GemRarity(%d)", int(r))
	}
	return rarityNames[r]
}

// Valid はレアリティが定義された範囲内かを返します。
func (r GemRarity) Valid() bool {
	return r >= RarityCommon && r <= RarityLegendary
}

// MarshalJSON はレアリティを文字列としてシリアライズします。
func (r GemRarity) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid gem rarity: %d", int(r))
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON は文字列表現からレアリティを復元します。
func (r *GemRarity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range rarityNames {
		if name == s {
			*r = GemRarity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown gem rarity: %q", s)
}

// ParseGemRarity は文字列表現をレアリティに変換します。
// 未知の文字列は RarityCommon と ok=false を返します。
func ParseGemRarity(s string) (GemRarity, bool) {
	for i, name := range rarityNames {
		if name == s {
			return GemRarity(i), true
		}
	}
	return RarityCommon, false
}

// GemAward は1回の解答に対する報酬イベントの記録です。
// 解答時点の AttemptRecord と MasteryState からいつでも再計算できる
// 派生データであり、表示・監査用にのみ保存します。スケジューリングの
// 入力には決して使いません。
type GemAward struct {
	AwardID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	AttemptID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"attempt_id"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	WordID    uuid.UUID `gorm:"type:uuid;not null" json:"word_id"`
	Rarity    GemRarity `gorm:"not null" json:"rarity"`
	Points    int       `gorm:"not null" json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

func (GemAward) TableName() string {
	return "gem_awards"
}

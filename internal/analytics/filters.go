// internal/analytics/filters.go
package analytics

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"go_vocab_mastery/internal/model"
)

// Filters は集計前に適用する絞り込み条件です。すべて純粋な述語であり、
// 解答履歴そのものを変更することはありません。
type Filters struct {
	Language string
	Category string
	From     *time.Time // OccurredAt >= From
	To       *time.Time // OccurredAt < To
	// 正答率レンジは単語単位の集計値に対する述語
	MinAccuracy *float64
	MaxAccuracy *float64
}

// matchRecord は1件の解答記録がフィルタを通過するかを判定します。
// 語彙メタデータ（言語・カテゴリ）は word から参照します。
func (f Filters) matchRecord(rec *model.AttemptRecord, word *model.Word) bool {
	if f.Language != "" {
		if word == nil || word.Language != f.Language {
			return false
		}
	}
	if f.Category != "" {
		if word == nil || word.Category != f.Category {
			return false
		}
	}
	if f.From != nil && rec.OccurredAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !rec.OccurredAt.Before(*f.To) {
		return false
	}
	return true
}

// matchAccuracy は単語単位の正答率がレンジ内かを判定します。
func (f Filters) matchAccuracy(accuracy float64) bool {
	if f.MinAccuracy != nil && accuracy < *f.MinAccuracy {
		return false
	}
	if f.MaxAccuracy != nil && accuracy > *f.MaxAccuracy {
		return false
	}
	return true
}

// Hash はキャッシュキー用のフィルタの安定したハッシュを返します。
// 同一条件のフィルタは必ず同じ値になります。
func (f Filters) Hash() string {
	h := fnv.New64a()
	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	write(f.Language)
	write(f.Category)
	if f.From != nil {
		write(strconv.FormatInt(f.From.UnixNano(), 10))
	} else {
		write("-")
	}
	if f.To != nil {
		write(strconv.FormatInt(f.To.UnixNano(), 10))
	} else {
		write("-")
	}
	if f.MinAccuracy != nil {
		write(strconv.FormatFloat(*f.MinAccuracy, 'g', -1, 64))
	} else {
		write("-")
	}
	if f.MaxAccuracy != nil {
		write(strconv.FormatFloat(*f.MaxAccuracy, 'g', -1, 64))
	} else {
		write("-")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

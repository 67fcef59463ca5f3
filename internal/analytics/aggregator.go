// internal/analytics/aggregator.go
//
// 解答履歴の集計。生の AttemptRecord ストリームを弱点・得意の分類と
// サマリ統計に畳み込む読み取り側の純粋な計算です。書き込み経路
// （スケジューラ）とは独立に動きます。
package analytics

import (
	"sort"

	"go_vocab_mastery/internal/model"

	"github.com/google/uuid"
)

// Config は弱点・得意判定の閾値です。
type Config struct {
	WeakThreshold   float64 // 正答率がこれ未満なら弱点
	StrongThreshold float64 // 正答率がこれ以上なら得意
	MinAttempts     int     // 判定に必要な最小解答数（根拠不足の単語は両リストから除外）
	ReviewPageSize  int     // 推奨復習キューの上限
}

// DefaultConfig はデフォルト閾値を返します。
func DefaultConfig() Config {
	return Config{
		WeakThreshold:   0.60,
		StrongThreshold: 0.85,
		MinAttempts:     3,
		ReviewPageSize:  50,
	}
}

// Summarize は解答履歴をスナップショットへ集計します。
//
//   - words は語彙メタデータの参照（言語・カテゴリのフィルタと表示名に使用）
//   - dueWordIDs は期限到来順に並んだ復習対象。フィルタを通過した単語との
//     積集合を取り、ReviewPageSize で打ち切って推奨キューにする
//
// 空の履歴（またはフィルタで空になった履歴）はエラーではなくゼロ値の
// スナップショットを返します。新規学習者では普通に起きる状態です。
// 同じ入力に対しては必ず同一のスナップショットを返します（並び順も含めて決定的）。
func Summarize(records []*model.AttemptRecord, words map[uuid.UUID]*model.Word, dueWordIDs []uuid.UUID, f Filters, cfg Config) *model.AnalyticsSnapshot {
	if cfg.MinAttempts <= 0 {
		cfg = DefaultConfig()
	}

	type group struct {
		stats model.WordAccuracy
	}
	groups := make(map[uuid.UUID]*group)

	for _, rec := range records {
		word := words[rec.WordID]
		if !f.matchRecord(rec, word) {
			continue
		}
		g, ok := groups[rec.WordID]
		if !ok {
			g = &group{stats: model.WordAccuracy{WordID: rec.WordID}}
			if word != nil {
				g.stats.Term = word.Term
			}
			groups[rec.WordID] = g
		}
		g.stats.Attempts++
		if rec.WasCorrect {
			g.stats.Correct++
		}
		if rec.OccurredAt.After(g.stats.LastAttemptAt) {
			g.stats.LastAttemptAt = rec.OccurredAt
		}
	}

	snapshot := &model.AnalyticsSnapshot{
		WeakWords:         []model.WordAccuracy{},
		StrongWords:       []model.WordAccuracy{},
		RecommendedReview: []uuid.UUID{},
	}

	// 平均正答率は正答率レンジのフィルタを通過した単語の解答だけで算出する。
	// TotalWordsと母集団を揃えないと、除外済みの単語が平均だけに混ざる。
	totalAttempts := 0
	totalCorrect := 0
	filtered := make(map[uuid.UUID]bool, len(groups))
	for wordID, g := range groups {
		g.stats.Accuracy = float64(g.stats.Correct) / float64(g.stats.Attempts)
		if !f.matchAccuracy(g.stats.Accuracy) {
			delete(groups, wordID)
			continue
		}
		filtered[wordID] = true
		snapshot.TotalWords++
		totalAttempts += g.stats.Attempts
		totalCorrect += g.stats.Correct

		// 解答数が足りない単語は弱点にも得意にも分類しない（根拠不足）
		if g.stats.Attempts < cfg.MinAttempts {
			continue
		}
		if g.stats.Accuracy < cfg.WeakThreshold {
			snapshot.WeakWords = append(snapshot.WeakWords, g.stats)
		} else if g.stats.Accuracy >= cfg.StrongThreshold {
			snapshot.StrongWords = append(snapshot.StrongWords, g.stats)
		}
	}

	if totalAttempts > 0 {
		snapshot.AverageAccuracy = float64(totalCorrect) / float64(totalAttempts)
	}

	// 弱点: 正答率の低い順。同率なら直近に解答したものを先に出す
	// （最悪の成績と最新の証拠を先頭に）。最後のタイブレークはID順で決定的に。
	sort.Slice(snapshot.WeakWords, func(i, j int) bool {
		a, b := snapshot.WeakWords[i], snapshot.WeakWords[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy < b.Accuracy
		}
		if !a.LastAttemptAt.Equal(b.LastAttemptAt) {
			return a.LastAttemptAt.After(b.LastAttemptAt)
		}
		return a.WordID.String() < b.WordID.String()
	})

	// 得意: 正答率の高い順
	sort.Slice(snapshot.StrongWords, func(i, j int) bool {
		a, b := snapshot.StrongWords[i], snapshot.StrongWords[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy > b.Accuracy
		}
		if !a.LastAttemptAt.Equal(b.LastAttemptAt) {
			return a.LastAttemptAt.After(b.LastAttemptAt)
		}
		return a.WordID.String() < b.WordID.String()
	})

	snapshot.WeakCount = len(snapshot.WeakWords)
	snapshot.StrongCount = len(snapshot.StrongWords)

	// 推奨復習キュー: 期限到来順を保ったままフィルタ結果と積集合を取る
	for _, wordID := range dueWordIDs {
		if len(snapshot.RecommendedReview) >= cfg.ReviewPageSize {
			break
		}
		if filtered[wordID] {
			snapshot.RecommendedReview = append(snapshot.RecommendedReview, wordID)
		}
	}

	return snapshot
}

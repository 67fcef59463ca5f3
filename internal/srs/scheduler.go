// internal/srs/scheduler.go
//
// 間隔反復スケジューラ。1件の解答記録を受け取り、(学習者, 単語) ごとの
// 習熟状態を更新する純粋な計算のみを行います。I/Oは一切持ちません。
package srs

import (
	"time"

	"go_vocab_mastery/internal/model"

	"github.com/google/uuid"
)

// Config はスケジューラの調整パラメータです。
type Config struct {
	MaxLevel        int     `mapstructure:"max_level"`
	MaxIntervalDays float64 `mapstructure:"max_interval_days"`
	// Thresholds が nil の場合は DefaultModeThresholds() を使用
	Thresholds map[model.GameMode]ModeThresholds `mapstructure:"-"`
}

// DefaultConfig はデフォルト設定を返します。
// 最大間隔365日は1年に1度は必ず目に触れさせるための上限です。
func DefaultConfig() Config {
	return Config{
		MaxLevel:        model.MaxMasteryLevel,
		MaxIntervalDays: 365,
	}
}

// Scheduler は習熟状態の遷移を計算します。状態は持ちません。
type Scheduler struct {
	cfg               Config
	thresholds        map[model.GameMode]ModeThresholds
	defaultThresholds ModeThresholds
}

func NewScheduler(cfg Config) *Scheduler {
	if cfg.MaxLevel <= 0 {
		cfg.MaxLevel = model.MaxMasteryLevel
	}
	if cfg.MaxIntervalDays <= 0 {
		cfg.MaxIntervalDays = 365
	}
	th := cfg.Thresholds
	if th == nil {
		th = DefaultModeThresholds()
	}
	return &Scheduler{
		cfg:               cfg,
		thresholds:        th,
		defaultThresholds: th[model.ModeLearn],
	}
}

// Apply は解答記録を習熟状態に適用し、更新後の状態を新しい値として返します。
// 引数の state は変更しません。state が nil の場合は初期状態から始めます。
//
// 記録のタイムスタンプが最終復習時刻より古い（または同時刻の）場合は
// model.ErrStaleRecord を返し、状態は一切変更しません。リトライの多い
// クライアントでは二重送信が普通に起きるので、これは想定内の回復可能な
// 条件であり、各記録の適用は最大1回に保たれます。
func (s *Scheduler) Apply(state *model.MasteryState, rec *model.AttemptRecord) (*model.MasteryState, error) {
	if state != nil && state.LastReviewedAt != nil && !rec.OccurredAt.After(*state.LastReviewedAt) {
		return nil, model.ErrStaleRecord
	}

	next := s.initOrCopy(state, rec)

	quality := s.Quality(rec)

	if quality >= qualityRetainedBoundary {
		// 定着: ストリークを伸ばし、間隔を成長させる
		next.ConsecutiveCorrect++
		next.SrsIntervalDays *= growthFactor(next.ConsecutiveCorrect)
		if next.SrsIntervalDays > s.cfg.MaxIntervalDays {
			next.SrsIntervalDays = s.cfg.MaxIntervalDays
		}
		// レベルはストリークが次レベルの閾値を跨いだときだけ上げる
		// （1回の解答でレベルが飛ばないように）
		if next.MasteryLevel < s.cfg.MaxLevel &&
			next.ConsecutiveCorrect >= levelUpThreshold(next.MasteryLevel+1) {
			next.MasteryLevel++
		}
	} else {
		// 失念 (lapse): ストリークを失い、間隔を半減、レベルを1つ下げる。
		// これが唯一許されるレベル低下です。
		next.ConsecutiveCorrect = 0
		next.SrsIntervalDays = next.SrsIntervalDays * 0.5
		if next.SrsIntervalDays < 1 {
			next.SrsIntervalDays = 1
		}
		if next.MasteryLevel > 0 {
			next.MasteryLevel--
		}
	}

	reviewedAt := rec.OccurredAt
	next.LastReviewedAt = &reviewedAt
	next.NextDueAt = rec.OccurredAt.Add(intervalDuration(next.SrsIntervalDays))

	return next, nil
}

// initOrCopy は更新のベースとなる状態を用意します。
func (s *Scheduler) initOrCopy(state *model.MasteryState, rec *model.AttemptRecord) *model.MasteryState {
	if state == nil {
		return &model.MasteryState{
			StateID:            uuid.New(),
			LearnerID:          rec.LearnerID,
			WordID:             rec.WordID,
			MasteryLevel:       0,
			SrsIntervalDays:    1,
			ConsecutiveCorrect: 0,
		}
	}
	copied := *state
	return &copied
}

// growthFactor はストリーク長に応じた間隔の成長係数を返します。
// ストリークが伸びるほど大きくなり、2.8 で頭打ちになります。
func growthFactor(consecutiveCorrect int) float64 {
	n := consecutiveCorrect
	if n > 6 {
		n = 6
	}
	return 1.6 + 0.2*float64(n)
}

// levelUpThreshold はレベル level に到達するために必要な連続正解数です。
// 上位レベルほど長いストリークを要求します。
func levelUpThreshold(level int) int {
	return 2 + level/2
}

func intervalDuration(days float64) time.Duration {
	return time.Duration(days * float64(24*time.Hour))
}

// internal/srs/quality.go
package srs

import "go_vocab_mastery/internal/model"

// ModeThresholds はモード別の「速い/普通」のレイテンシ閾値です。
// タイピング解答と選択式では到達可能な速度が違うため、閾値は
// グローバル定数ではなくモードごとの設定にしています。
type ModeThresholds struct {
	FastMs   int64 `mapstructure:"fast_ms"`
	NormalMs int64 `mapstructure:"normal_ms"`
}

// DefaultModeThresholds は各モードのデフォルト閾値を返します。
func DefaultModeThresholds() map[model.GameMode]ModeThresholds {
	return map[model.GameMode]ModeThresholds{
		model.ModeLearn:          {FastMs: 1000, NormalMs: 2000},
		model.ModeRecall:         {FastMs: 4000, NormalMs: 8000}, // タイピング入力は遅くて当然
		model.ModeSpeed:          {FastMs: 800, NormalMs: 1500},
		model.ModeMultipleChoice: {FastMs: 1500, NormalMs: 3000},
		model.ModeListening:      {FastMs: 3000, NormalMs: 6000},
		model.ModeDictation:      {FastMs: 5000, NormalMs: 10000},
		model.ModeCloze:          {FastMs: 4000, NormalMs: 8000},
		model.ModeFlashcard:      {FastMs: 1500, NormalMs: 3000},
		model.ModeMatch:          {FastMs: 1200, NormalMs: 2500},
		model.ModeMixed:          {FastMs: 2000, NormalMs: 4000},
	}
}

// 品質スコア (0-5)。SM-2系アルゴリズムの慣例に合わせています。
// 0-1 = 不正解、2-3 = 正解だが時間を要した、4-5 = 速い正解。
const (
	QualityBlackout         = 0 // 不正解かつ時間超過
	QualityIncorrect        = 1 // 不正解
	QualityCorrectSlow      = 2 // 正解（普通の閾値超過）
	QualityCorrectNormal    = 3 // 正解（普通の閾値以内）
	QualityCorrectFast      = 5 // 正解（速い閾値以内）
	qualityRetainedBoundary = 3 // これ以上で「定着」扱い
)

// Quality は正誤とレイテンシから品質スコアを算出します。
// 不正解はレイテンシに関係なく必ず1以下になります。
func (s *Scheduler) Quality(rec *model.AttemptRecord) int {
	th, ok := s.thresholds[rec.Mode]
	if !ok {
		th = s.defaultThresholds
	}

	if !rec.WasCorrect {
		if rec.ResponseLatencyMs > th.NormalMs {
			return QualityBlackout
		}
		return QualityIncorrect
	}

	switch {
	case rec.ResponseLatencyMs <= th.FastMs:
		return QualityCorrectFast
	case rec.ResponseLatencyMs <= th.NormalMs:
		return QualityCorrectNormal
	default:
		return QualityCorrectSlow
	}
}

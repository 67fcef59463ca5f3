// internal/reward/engine.go
//
// ジェム報酬エンジン。1回の解答コンテキストからレアリティとポイントを
// 決める決定論的な計算で、乱数もI/Oも使いません。習熟レベルによる
// 上限（マスタリーキャップ）が、練習していない単語で高レアリティを
// 乱獲する行為への対策になっています。
package reward

import (
	"go_vocab_mastery/internal/model"
)

// ModeConfig はモード別の報酬閾値です。
type ModeConfig struct {
	FastMs           int64 `mapstructure:"fast_ms"`           // これ以下なら rare 相当の速さ
	NormalMs         int64 `mapstructure:"normal_ms"`         // これ以下なら uncommon 相当の速さ
	EpicStreak       int   `mapstructure:"epic_streak"`       // このストリークで epic
	LegendaryStreak  int   `mapstructure:"legendary_streak"`  // このストリークで legendary
	CategoricalBonus bool  `mapstructure:"categorical_bonus"` // タイピング入力等、難度の高い解答形式への加点
}

// Config は報酬エンジンの設定です。
type Config struct {
	Modes map[model.GameMode]ModeConfig
	// Fallback は未知モード用の設定です。未知モードはエラーにせず
	// この設定で必ず報酬を計算します（報酬が解答の妨げにならないように）。
	Fallback ModeConfig
	// Points はレアリティ毎のポイント（単調増加であること）
	Points map[model.GemRarity]int
}

// DefaultConfig はデフォルトの報酬設定を返します。
func DefaultConfig() Config {
	return Config{
		Modes: map[model.GameMode]ModeConfig{
			model.ModeLearn:          {FastMs: 1000, NormalMs: 2000, EpicStreak: 5, LegendaryStreak: 10},
			model.ModeRecall:         {FastMs: 4000, NormalMs: 8000, EpicStreak: 5, LegendaryStreak: 10, CategoricalBonus: true},
			model.ModeSpeed:          {FastMs: 800, NormalMs: 1500, EpicStreak: 8, LegendaryStreak: 15},
			model.ModeMultipleChoice: {FastMs: 1500, NormalMs: 3000, EpicStreak: 6, LegendaryStreak: 12},
			model.ModeListening:      {FastMs: 3000, NormalMs: 6000, EpicStreak: 5, LegendaryStreak: 10, CategoricalBonus: true},
			model.ModeDictation:      {FastMs: 5000, NormalMs: 10000, EpicStreak: 4, LegendaryStreak: 8, CategoricalBonus: true},
			model.ModeCloze:          {FastMs: 4000, NormalMs: 8000, EpicStreak: 5, LegendaryStreak: 10, CategoricalBonus: true},
			model.ModeFlashcard:      {FastMs: 1500, NormalMs: 3000, EpicStreak: 6, LegendaryStreak: 12},
			model.ModeMatch:          {FastMs: 1200, NormalMs: 2500, EpicStreak: 6, LegendaryStreak: 12},
			model.ModeMixed:          {FastMs: 2000, NormalMs: 4000, EpicStreak: 5, LegendaryStreak: 10},
		},
		Fallback: ModeConfig{FastMs: 1000, NormalMs: 2000, EpicStreak: 5, LegendaryStreak: 10},
		Points: map[model.GemRarity]int{
			model.RarityCommon:    10,
			model.RarityUncommon:  25,
			model.RarityRare:      50,
			model.RarityEpic:      100,
			model.RarityLegendary: 250,
		},
	}
}

// Context は報酬計算に必要な解答時点の情報です。
type Context struct {
	ResponseTimeMs      int64
	StreakCount         int
	HintUsed            bool
	IsBonusMode         bool // モード設定の CategoricalBonus を呼び出し側で上書きする場合に使用
	CurrentMasteryLevel int  // 解答前（更新前）の習熟レベル
}

// Engine はジェム報酬を計算します。状態は持ちません。
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.Modes == nil {
		cfg.Modes = DefaultConfig().Modes
	}
	if cfg.Points == nil {
		cfg.Points = DefaultConfig().Points
	}
	if cfg.Fallback == (ModeConfig{}) {
		cfg.Fallback = DefaultConfig().Fallback
	}
	return &Engine{cfg: cfg}
}

// KnownMode は指定モードの設定を持っているかを返します。
// 未知モードでも Compute は失敗しないので、警告ログ用の判定にだけ使います。
func (e *Engine) KnownMode(mode model.GameMode) bool {
	_, ok := e.cfg.Modes[mode]
	return ok
}

// Compute はレアリティとポイントを決定します。
//
// 判定順序:
//  1. ヒント使用は無条件で common（ボーナス資格を失う）。キャップ判定へ直行。
//  2. レイテンシからベースレアリティ (fast→rare / normal→uncommon / それ以外→common)
//  3. ストリークによる昇格 (legendary/epic)。速さで得たレアリティより
//     高くなる場合のみ適用し、降格には決して使わない。
//  4. ボーナスモードなら1段階だけ昇格（legendary 止まり）
//  5. マスタリーキャップ: 習熟レベルが許す上限に丸める
func (e *Engine) Compute(mode model.GameMode, ctx Context) (model.GemRarity, int) {
	mc, ok := e.cfg.Modes[mode]
	if !ok {
		mc = e.cfg.Fallback
	}

	var rarity model.GemRarity
	if ctx.HintUsed {
		rarity = model.RarityCommon
	} else {
		switch {
		case ctx.ResponseTimeMs <= mc.FastMs:
			rarity = model.RarityRare
		case ctx.ResponseTimeMs <= mc.NormalMs:
			rarity = model.RarityUncommon
		default:
			rarity = model.RarityCommon
		}

		if ctx.StreakCount >= mc.LegendaryStreak && model.RarityLegendary > rarity {
			rarity = model.RarityLegendary
		} else if ctx.StreakCount >= mc.EpicStreak && model.RarityEpic > rarity {
			rarity = model.RarityEpic
		}

		if (mc.CategoricalBonus || ctx.IsBonusMode) && rarity < model.RarityLegendary {
			rarity++
		}
	}

	if limit := MasteryCap(ctx.CurrentMasteryLevel); rarity > limit {
		rarity = limit
	}

	return rarity, e.cfg.Points[rarity]
}

// MasteryCap は習熟レベルが許す最大レアリティを返します。
// レベルの低い単語では legendary を獲得できません。
func MasteryCap(masteryLevel int) model.GemRarity {
	switch {
	case masteryLevel <= 1:
		return model.RarityRare
	case masteryLevel <= 3:
		return model.RarityEpic
	default:
		return model.RarityLegendary
	}
}

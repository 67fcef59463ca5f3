// internal/config/config.go
package config

import (
	"log"

	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/reward"
	"go_vocab_mastery/internal/srs"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// AnalyticsConfig は弱点・得意判定の閾値とキュー上限です。
type AnalyticsConfig struct {
	WeakThreshold   float64 `mapstructure:"weak_threshold"`   // これ未満で弱点扱い
	StrongThreshold float64 `mapstructure:"strong_threshold"` // これ以上で得意扱い
	MinAttempts     int     `mapstructure:"min_attempts"`     // 判定に必要な最小解答数
	ReviewPageSize  int     `mapstructure:"review_page_size"` // 推奨復習キューの上限
}

// SRSTuningConfig はスケジューラの調整値です。埋め込みの srs.Config が
// max_level / max_interval_days を受け、モード別閾値は文字列キーで受けて
// SchedulerConfig で GameMode に解決します。
type SRSTuningConfig struct {
	srs.Config `mapstructure:",squash"`
	Thresholds map[string]srs.ModeThresholds `mapstructure:"thresholds"`
}

// SchedulerConfig はデフォルト値の上に設定ファイルの値を重ねた
// スケジューラ設定を返します。未設定の項目はデフォルトのまま残ります。
func (c SRSTuningConfig) SchedulerConfig() srs.Config {
	cfg := srs.DefaultConfig()
	if c.MaxLevel > 0 {
		cfg.MaxLevel = c.MaxLevel
	}
	if c.MaxIntervalDays > 0 {
		cfg.MaxIntervalDays = c.MaxIntervalDays
	}
	thresholds := srs.DefaultModeThresholds()
	for key, th := range c.Thresholds {
		mode, ok := model.ParseGameMode(key)
		if !ok {
			log.Printf("Unknown game mode '%s' in app.srs.thresholds, ignoring", key)
			continue
		}
		base := thresholds[mode]
		if th.FastMs > 0 {
			base.FastMs = th.FastMs
		}
		if th.NormalMs > 0 {
			base.NormalMs = th.NormalMs
		}
		thresholds[mode] = base
	}
	cfg.Thresholds = thresholds
	return cfg
}

// RewardTuningConfig は報酬エンジンの調整値です。モードとポイントは
// 文字列キーで受け、EngineConfig で GameMode / GemRarity に解決します。
type RewardTuningConfig struct {
	Modes    map[string]reward.ModeConfig `mapstructure:"modes"`
	Fallback reward.ModeConfig            `mapstructure:"fallback"`
	Points   map[string]int               `mapstructure:"points"`
}

// EngineConfig はデフォルト値の上に設定ファイルの値を重ねた報酬設定を
// 返します。数値はゼロならデフォルトに戻りますが、categorical_bonus は
// ブール値なので、モードを記載する場合は明示してください。
func (c RewardTuningConfig) EngineConfig() reward.Config {
	cfg := reward.DefaultConfig()
	for key, mc := range c.Modes {
		mode, ok := model.ParseGameMode(key)
		if !ok {
			log.Printf("Unknown game mode '%s' in app.reward.modes, ignoring", key)
			continue
		}
		base := cfg.Modes[mode]
		if mc.FastMs > 0 {
			base.FastMs = mc.FastMs
		}
		if mc.NormalMs > 0 {
			base.NormalMs = mc.NormalMs
		}
		if mc.EpicStreak > 0 {
			base.EpicStreak = mc.EpicStreak
		}
		if mc.LegendaryStreak > 0 {
			base.LegendaryStreak = mc.LegendaryStreak
		}
		base.CategoricalBonus = mc.CategoricalBonus
		cfg.Modes[mode] = base
	}
	if c.Fallback != (reward.ModeConfig{}) {
		cfg.Fallback = c.Fallback
	}
	for key, points := range c.Points {
		rarity, ok := model.ParseGemRarity(key)
		if !ok {
			log.Printf("Unknown gem rarity '%s' in app.reward.points, ignoring", key)
			continue
		}
		if points > 0 {
			cfg.Points[rarity] = points
		}
	}
	return cfg
}

type AppConfig struct {
	ReviewLimit int                `mapstructure:"review_limit"` // 復習セッション1回あたりの取得上限
	Analytics   AnalyticsConfig    `mapstructure:"analytics"`
	SRS         SRSTuningConfig    `mapstructure:"srs"`
	Reward      RewardTuningConfig `mapstructure:"reward"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書きを許可 (例: APP_DATABASE_URL)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default '" + DefaultServerPort + "'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Log.Format == "" {
		Cfg.Log.Format = DefaultLogFormat
	}
	if Cfg.App.ReviewLimit <= 0 {
		log.Printf("App review limit not set or invalid, using default '%d'", DefaultReviewLimit)
		Cfg.App.ReviewLimit = DefaultReviewLimit
	}
	applyAnalyticsDefaults(&Cfg.App.Analytics)
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Review Limit: %d", Cfg.App.ReviewLimit)

	return nil
}

// applyAnalyticsDefaults は未設定・不正な分析閾値をデフォルトで埋めます。
func applyAnalyticsDefaults(c *AnalyticsConfig) {
	if c.WeakThreshold <= 0 || c.WeakThreshold >= 1 {
		c.WeakThreshold = DefaultWeakThreshold
	}
	if c.StrongThreshold <= 0 || c.StrongThreshold > 1 {
		c.StrongThreshold = DefaultStrongThreshold
	}
	if c.WeakThreshold >= c.StrongThreshold {
		log.Printf("Invalid analytics thresholds (weak=%.2f >= strong=%.2f), using defaults",
			c.WeakThreshold, c.StrongThreshold)
		c.WeakThreshold = DefaultWeakThreshold
		c.StrongThreshold = DefaultStrongThreshold
	}
	if c.MinAttempts <= 0 {
		c.MinAttempts = DefaultMinAttempts
	}
	if c.ReviewPageSize <= 0 {
		c.ReviewPageSize = DefaultReviewPageSize
	}
}

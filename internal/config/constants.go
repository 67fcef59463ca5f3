// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "VocabMasteryEngine"
	AppVersion = "0.3.1"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultReviewLimit = 20

	// 分析のデフォルト閾値
	DefaultWeakThreshold   = 0.60 // 正答率がこれ未満なら弱点
	DefaultStrongThreshold = 0.85 // 正答率がこれ以上なら得意
	DefaultMinAttempts     = 3    // 判定に必要な最小解答数
	DefaultReviewPageSize  = 50   // 推奨復習キューの上限
)

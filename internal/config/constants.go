// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "VocabTrainer"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort   = ":8080"
	DefaultLogLevel     = "info"
	DefaultSessionLimit = 10
)

// セッション関連の制限値
const (
	MinSessionLimit = 1
	MaxSessionLimit = 50
)

// リマインダー関連の既定値
const (
	DefaultReminderTime        = "09:00"
	ReminderToleranceMinutes   = 5
	DefaultQuestionsPerSession = 10
	DefaultReminderDifficulty  = "normal"
)

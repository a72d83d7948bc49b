// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "LinguaQuest"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort        = ":8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
	DefaultReviewLimit       = 20
	DefaultSessionExperience = 50
	DefaultJWTExpiryHours    = 3
	DefaultAIModel           = "gpt-4o-mini"
)

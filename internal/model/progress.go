// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// セッションの種別（元アプリの練習モード）
const (
	SessionModeVocabulary = "vocabulary"
	SessionModeMatching   = "matching"
	SessionModeFillBlank  = "fill_blank"
	SessionModeListening  = "listening"
	SessionModeSpeaking   = "speaking"
)

// UserProgress はユーザーごとの累積カウンタです。
// アカウント作成時に必ず1行作られる。存在しない場合は登録漏れであり、
// ここで勝手に0埋めの行を作ってはいけない。
type UserProgress struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Experience       int        `gorm:"not null;default:0" json:"experience"`
	CurrentStreak    int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak    int        `gorm:"not null;default:0" json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	CreatedAt        time.Time  `json:"-"`
	UpdatedAt        time.Time  `json:"-"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// CompleteSessionRequest はセッション完了通知のDTO
type CompleteSessionRequest struct {
	Mode           string `json:"mode" validate:"required,oneof=vocabulary matching fill_blank listening speaking"`
	Score          int    `json:"score" validate:"min=0"`
	TotalQuestions int    `json:"total_questions" validate:"required,min=1"`
}

// CompleteSessionResponse はセッション完了後の集計サマリ
type CompleteSessionResponse struct {
	ExperienceAwarded int `json:"experience_awarded"`
	TotalExperience   int `json:"total_experience"`
	CurrentStreak     int `json:"current_streak"`
	LongestStreak     int `json:"longest_streak"`
}

// ProgressResponse は進捗表示用のDTO
type ProgressResponse struct {
	Experience       int    `json:"experience"`
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	LastActivityDate string `json:"last_activity_date,omitempty"` // YYYY-MM-DD
}

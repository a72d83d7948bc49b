// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout はカレンダー日付をAPI上でやり取りする固定フォーマット
const DateLayout = "2006-01-02"

// ReviewRecord は (ユーザー, 語彙) ごとの復習状態を表します。
// 初回回答時に遅延作成され、以後は回答のたびに更新される。削除はしない。
type ReviewRecord struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	WordID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"word_id"`
	Level          int        `gorm:"not null;default:0" json:"level"`
	NextDueDate    time.Time  `gorm:"not null;index" json:"next_due_date"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	CreatedAt      time.Time  `json:"-"`
	UpdatedAt      time.Time  `json:"-"`
}

func (ReviewRecord) TableName() string {
	return "review_records"
}

// DueItemResponse は復習バッチ（出題対象）のレスポンスDTO
type DueItemResponse struct {
	WordID  uuid.UUID `json:"word_id"`
	Amharic string    `json:"amharic"`
	Term    string    `json:"term"` // 正解表示用に含める
	Lesson  string    `json:"lesson,omitempty"`
	Level   int       `json:"level"`
}

// SubmitAnswerRequest は回答送信リクエストのDTO
type SubmitAnswerRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

// SubmitAnswerResponse は回答適用後の復習状態
type SubmitAnswerResponse struct {
	WordID      uuid.UUID `json:"word_id"`
	Level       int       `json:"level"`
	NextDueDate string    `json:"next_due_date"` // YYYY-MM-DD
}

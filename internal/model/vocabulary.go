// internal/model/vocabulary.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyItem はカタログ上の1語彙を表します。
// アムハラ語の語は必須、出題言語ごとの訳語は言語単位でNULL可。
// カタログはシード時に投入され、以後は不変（ユーザー所有ではない）。
type VocabularyItem struct {
	WordID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	AmharicTerm string    `gorm:"not null" json:"amharic"`
	GermanTerm  *string   `json:"german,omitempty"`
	EnglishTerm *string   `json:"english,omitempty"`
	FrenchTerm  *string   `json:"french,omitempty"`
	SpanishTerm *string   `json:"spanish,omitempty"`
	Lesson      string    `gorm:"index" json:"lesson"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (VocabularyItem) TableName() string {
	return "vocabulary"
}

// TermIn は指定言語の訳語を返します。訳語が未登録ならfalse。
func (v *VocabularyItem) TermIn(lang Language) (string, bool) {
	var term *string
	switch lang {
	case LanguageGerman:
		term = v.GermanTerm
	case LanguageEnglish:
		term = v.EnglishTerm
	case LanguageFrench:
		term = v.FrenchTerm
	case LanguageSpanish:
		term = v.SpanishTerm
	}
	if term == nil {
		return "", false
	}
	return *term, true
}

// VocabularyItemResponse はカタログ一覧のレスポンスDTO
type VocabularyItemResponse struct {
	WordID  uuid.UUID `json:"word_id"`
	Amharic string    `json:"amharic"`
	Term    string    `json:"term"` // 出題言語の訳語
	Lesson  string    `json:"lesson,omitempty"`
}

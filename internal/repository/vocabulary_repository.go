//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DueWord は復習対象クエリの結果行です。
// レコード未作成（初見）の語は Level 0 として返る。
type DueWord struct {
	WordID      uuid.UUID `gorm:"column:word_id"`
	AmharicTerm string    `gorm:"column:amharic_term"`
	Term        string    `gorm:"column:term"`
	Lesson      string    `gorm:"column:lesson"`
	Level       int       `gorm:"column:level"`
}

type VocabularyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, item *model.VocabularyItem) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.VocabularyItem, error)
	FindByAmharicTerm(ctx context.Context, db *gorm.DB, term string) (*model.VocabularyItem, error)
	ListByLanguage(ctx context.Context, db *gorm.DB, lang model.Language) ([]*model.VocabularyItem, error)
	FindRandomWithTerm(ctx context.Context, db *gorm.DB, lang model.Language) (*model.VocabularyItem, error)
	FindDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, lang model.Language, lesson string, now time.Time, limit int) ([]*DueWord, error)
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) Create(ctx context.Context, tx *gorm.DB, item *model.VocabularyItem) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(item)
	if result.Error != nil {
		logger.Error("Error creating vocabulary item in DB",
			"error", result.Error,
			"amharic_term", item.AmharicTerm,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.VocabularyItem, error) {
	var item model.VocabularyItem
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &item, nil
}

func (r *gormVocabularyRepository) FindByAmharicTerm(ctx context.Context, db *gorm.DB, term string) (*model.VocabularyItem, error) {
	var item model.VocabularyItem
	result := db.WithContext(ctx).Where("amharic_term = ?", term).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormVocabularyRepository.FindByAmharicTerm: %w", result.Error)
	}
	return &item, nil
}

func (r *gormVocabularyRepository) ListByLanguage(ctx context.Context, db *gorm.DB, lang model.Language) ([]*model.VocabularyItem, error) {
	var items []*model.VocabularyItem
	// 対象言語の訳語が無い語はカタログ一覧にも出さない
	result := db.WithContext(ctx).
		Where(fmt.Sprintf("%s IS NOT NULL", lang.TermColumn())).
		Order("lesson ASC, amharic_term ASC").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("gormVocabularyRepository.ListByLanguage: %w", result.Error)
	}
	return items, nil
}

func (r *gormVocabularyRepository) FindRandomWithTerm(ctx context.Context, db *gorm.DB, lang model.Language) (*model.VocabularyItem, error) {
	var item model.VocabularyItem
	result := db.WithContext(ctx).
		Where(fmt.Sprintf("%s IS NOT NULL", lang.TermColumn())).
		Order("RANDOM()").
		First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormVocabularyRepository.FindRandomWithTerm: %w", result.Error)
	}
	return &item, nil
}

// FindDue は復習対象の語を返します。
// 対象: レビュー記録が無い語、または next_due_date が今日以前の語。
// 対象言語の訳語が無い語は期日に関係なく除外（ハードフィルタ）。
// 並び: 未学習の語が先、次いで期日の古い順、同着は呼び出しごとのランダム。
func (r *gormVocabularyRepository) FindDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, lang model.Language, lesson string, now time.Time, limit int) ([]*DueWord, error) {
	logger := middleware.GetLogger(ctx)
	today := srs.DateOf(now)

	query := db.WithContext(ctx).
		Table("vocabulary").
		Select(fmt.Sprintf(
			"vocabulary.word_id, vocabulary.amharic_term, vocabulary.%s AS term, vocabulary.lesson, COALESCE(review_records.level, 0) AS level",
			lang.TermColumn())).
		Joins("LEFT JOIN review_records ON review_records.word_id = vocabulary.word_id AND review_records.user_id = ?", userID).
		Where(fmt.Sprintf("vocabulary.%s IS NOT NULL", lang.TermColumn())).
		Where("review_records.user_id IS NULL OR review_records.next_due_date <= ?", today)

	if lesson != "" {
		query = query.Where("vocabulary.lesson = ?", lesson)
	}

	var words []*DueWord
	result := query.
		Order("CASE WHEN review_records.user_id IS NULL THEN 0 ELSE 1 END").
		Order("review_records.next_due_date ASC").
		Order("RANDOM()").
		Limit(limit).
		Scan(&words)

	if result.Error != nil {
		logger.Error("Error finding due words in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindDue: %w", result.Error)
	}

	return words, nil
}

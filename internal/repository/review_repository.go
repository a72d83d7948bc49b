//go:generate mockery --name ReviewRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"linguaquest/internal/middleware"
	"linguaquest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.ReviewRecord, error)
	FindForUpdate(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID) (*model.ReviewRecord, error)
	Upsert(ctx context.Context, tx *gorm.DB, record *model.ReviewRecord) error
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) Find(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.ReviewRecord, error) {
	var record model.ReviewRecord
	result := db.WithContext(ctx).
		Where("user_id = ? AND word_id = ?", userID, wordID).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReviewRepository.Find: %w", result.Error)
	}
	return &record, nil
}

// FindForUpdate は対象行をロックして取得します。
// 同じ (user, word) への同時回答を直列化するため、トランザクション内で使うこと。
func (r *gormReviewRepository) FindForUpdate(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID) (*model.ReviewRecord, error) {
	var record model.ReviewRecord
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND word_id = ?", userID, wordID).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReviewRepository.FindForUpdate: %w", result.Error)
	}
	return &record, nil
}

// Upsert は (user_id, word_id) をキーにINSERT ... ON CONFLICT DO UPDATEを発行します。
// 読み→書きの2往復で挿入レースに負けても、ここで必ず1行に収束する。
func (r *gormReviewRepository) Upsert(ctx context.Context, tx *gorm.DB, record *model.ReviewRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "word_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"level", "next_due_date", "last_reviewed_at", "updated_at",
			}),
		}).
		Create(record)
	if result.Error != nil {
		logger.Error("Error upserting review record in DB",
			"error", result.Error,
			"user_id", record.UserID.String(),
			"word_id", record.WordID.String(),
		)
		return fmt.Errorf("gormReviewRepository.Upsert: %w", result.Error)
	}
	return nil
}

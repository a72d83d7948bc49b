//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error
	Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserProgress, error)
	FindForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*model.UserProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error
	AddExperience(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	result := tx.WithContext(ctx).Create(progress)
	return result.Error
}

func (r *gormProgressRepository) Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserProgress, error) {
	var progress model.UserProgress
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.Find: %w", result.Error)
	}
	return &progress, nil
}

// FindForUpdate はユーザーの集計行をロックして取得します。
// ストリークとXPの更新は必ずこのロックの下で行い、2往復の読み書き競合を防ぐ。
func (r *gormProgressRepository) FindForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*model.UserProgress, error) {
	var progress model.UserProgress
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.FindForUpdate: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(progress)
	if result.Error != nil {
		logger.Error("Error updating user progress in DB",
			"error", result.Error,
			"user_id", progress.UserID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}

// AddExperience はXPを1文の加算UPDATEで積み増します（上限も減衰もなし）
func (r *gormProgressRepository) AddExperience(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int) error {
	result := tx.WithContext(ctx).
		Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		UpdateColumn("experience", gorm.Expr("experience + ?", points))
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.AddExperience: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

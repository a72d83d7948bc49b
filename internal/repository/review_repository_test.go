// internal/repository/review_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"linguaquest/internal/model"
	"linguaquest/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBReviewRepo(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ReviewRecord{}))
	return db
}

func Test_gormReviewRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewGormReviewRepository()
	db := setupTestDBReviewRepo(t)

	userID := uuid.New()
	wordID := uuid.New()
	now := time.Now()
	today := srs.DateOf(now)

	t.Run("正常系: 記録が無ければ挿入される", func(t *testing.T) {
		rec := &model.ReviewRecord{
			UserID: userID, WordID: wordID,
			Level: 1, NextDueDate: today.AddDate(0, 0, 1), LastReviewedAt: &now,
		}
		require.NoError(t, repo.Upsert(ctx, db, rec))

		found, err := repo.Find(ctx, db, userID, wordID)
		require.NoError(t, err)
		assert.Equal(t, 1, found.Level)
	})

	t.Run("正常系: 同じ (user, word) への再回答は1行に収束する", func(t *testing.T) {
		later := now.Add(time.Minute)
		rec := &model.ReviewRecord{
			UserID: userID, WordID: wordID,
			Level: 2, NextDueDate: today.AddDate(0, 0, 6), LastReviewedAt: &later,
		}
		require.NoError(t, repo.Upsert(ctx, db, rec))

		var count int64
		require.NoError(t, db.Model(&model.ReviewRecord{}).
			Where("user_id = ? AND word_id = ?", userID, wordID).
			Count(&count).Error)
		assert.Equal(t, int64(1), count)

		found, err := repo.Find(ctx, db, userID, wordID)
		require.NoError(t, err)
		assert.Equal(t, 2, found.Level)
		assert.Equal(t, today.AddDate(0, 0, 6).Format(model.DateLayout), found.NextDueDate.Format(model.DateLayout))
	})

	t.Run("正常系: 別ユーザーの同じ語は別の行になる", func(t *testing.T) {
		otherUser := uuid.New()
		rec := &model.ReviewRecord{
			UserID: otherUser, WordID: wordID,
			Level: 0, NextDueDate: today,
		}
		require.NoError(t, repo.Upsert(ctx, db, rec))

		var count int64
		require.NoError(t, db.Model(&model.ReviewRecord{}).
			Where("word_id = ?", wordID).
			Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})
}

func Test_gormReviewRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := NewGormReviewRepository()
	db := setupTestDBReviewRepo(t)

	t.Run("異常系: 記録が無ければErrNotFound", func(t *testing.T) {
		rec, err := repo.Find(ctx, db, uuid.New(), uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, rec)
	})
}

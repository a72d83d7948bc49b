// internal/repository/vocabulary_repository_test.go
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

func setupTestDBVocab(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.VocabularyItem{}, &model.ReviewRecord{}))
	return db
}

func strPtr(s string) *string { return &s }

func createVocabItem(t *testing.T, db *gorm.DB, amharic string, german *string, lesson string) *model.VocabularyItem {
	t.Helper()
	item := &model.VocabularyItem{
		WordID:      uuid.New(),
		AmharicTerm: amharic,
		GermanTerm:  german,
		Lesson:      lesson,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func Test_gormVocabularyRepository_FindDue(t *testing.T) {
	ctx := context.Background()
	repo := NewGormVocabularyRepository()

	now := time.Now()
	today := srs.DateOf(now)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("正常系: 未学習が先、次いで期日の古い順", func(t *testing.T) {
		db := setupTestDBVocab(t)
		userID := uuid.New()

		overdue := createVocabItem(t, db, "ውሃ", strPtr("Wasser"), "l1")
		dueToday := createVocabItem(t, db, "እንጀራ", strPtr("Brot"), "l1")
		neverReviewed := createVocabItem(t, db, "ቡና", strPtr("Kaffee"), "l1")
		notDueYet := createVocabItem(t, db, "ወተት", strPtr("Milch"), "l1")

		require.NoError(t, db.Create(&model.ReviewRecord{UserID: userID, WordID: overdue.WordID, Level: 2, NextDueDate: yesterday}).Error)
		require.NoError(t, db.Create(&model.ReviewRecord{UserID: userID, WordID: dueToday.WordID, Level: 1, NextDueDate: today}).Error)
		require.NoError(t, db.Create(&model.ReviewRecord{UserID: userID, WordID: notDueYet.WordID, Level: 3, NextDueDate: tomorrow}).Error)

		words, err := repo.FindDue(ctx, db, userID, model.LanguageGerman, "", now, 20)
		require.NoError(t, err)
		require.Len(t, words, 3)

		// 未学習 → 期日切れ → 今日期日 の順。期日未到来は含まれない。
		assert.Equal(t, neverReviewed.WordID, words[0].WordID)
		assert.Equal(t, 0, words[0].Level)
		assert.Equal(t, overdue.WordID, words[1].WordID)
		assert.Equal(t, 2, words[1].Level)
		assert.Equal(t, dueToday.WordID, words[2].WordID)
		for _, w := range words {
			assert.NotEqual(t, notDueYet.WordID, w.WordID)
		}
	})

	t.Run("正常系: 出題言語の訳語が無い語は期日に関係なく除外", func(t *testing.T) {
		db := setupTestDBVocab(t)
		userID := uuid.New()

		withTerm := createVocabItem(t, db, "ውሃ", strPtr("Wasser"), "l1")
		noTerm := createVocabItem(t, db, "እንጀራ", nil, "l1")
		require.NoError(t, db.Create(&model.ReviewRecord{UserID: userID, WordID: noTerm.WordID, Level: 1, NextDueDate: yesterday}).Error)

		words, err := repo.FindDue(ctx, db, userID, model.LanguageGerman, "", now, 20)
		require.NoError(t, err)
		require.Len(t, words, 1)
		assert.Equal(t, withTerm.WordID, words[0].WordID)
		assert.Equal(t, "Wasser", words[0].Term)
	})

	t.Run("正常系: 他ユーザーの記録に影響されない", func(t *testing.T) {
		db := setupTestDBVocab(t)
		userID := uuid.New()
		otherUserID := uuid.New()

		item := createVocabItem(t, db, "ውሃ", strPtr("Wasser"), "l1")
		// 他ユーザーは先の期日を持つが、自分にとっては未学習
		require.NoError(t, db.Create(&model.ReviewRecord{UserID: otherUserID, WordID: item.WordID, Level: 5, NextDueDate: tomorrow}).Error)

		words, err := repo.FindDue(ctx, db, userID, model.LanguageGerman, "", now, 20)
		require.NoError(t, err)
		require.Len(t, words, 1)
		assert.Equal(t, 0, words[0].Level)
	})

	t.Run("正常系: レッスンでの絞り込み", func(t *testing.T) {
		db := setupTestDBVocab(t)
		userID := uuid.New()

		inLesson := createVocabItem(t, db, "ውሃ", strPtr("Wasser"), "l1")
		createVocabItem(t, db, "እንጀራ", strPtr("Brot"), "l2")

		words, err := repo.FindDue(ctx, db, userID, model.LanguageGerman, "l1", now, 20)
		require.NoError(t, err)
		require.Len(t, words, 1)
		assert.Equal(t, inLesson.WordID, words[0].WordID)
	})

	t.Run("正常系: リミットが効く", func(t *testing.T) {
		db := setupTestDBVocab(t)
		userID := uuid.New()

		for i := 0; i < 30; i++ {
			createVocabItem(t, db, uuid.NewString(), strPtr("term"), "l1")
		}

		words, err := repo.FindDue(ctx, db, userID, model.LanguageGerman, "", now, 20)
		require.NoError(t, err)
		assert.Len(t, words, 20)
	})

	t.Run("正常系: 対象ゼロ件なら空の結果", func(t *testing.T) {
		db := setupTestDBVocab(t)
		words, err := repo.FindDue(ctx, db, uuid.New(), model.LanguageGerman, "", now, 20)
		require.NoError(t, err)
		assert.Empty(t, words)
	})
}

func Test_gormVocabularyRepository_ListByLanguage(t *testing.T) {
	ctx := context.Background()
	repo := NewGormVocabularyRepository()
	db := setupTestDBVocab(t)

	createVocabItem(t, db, "ውሃ", strPtr("Wasser"), "l1")
	createVocabItem(t, db, "እንጀራ", nil, "l1") // ドイツ語訳なし

	items, err := repo.ListByLanguage(ctx, db, model.LanguageGerman)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ውሃ", items[0].AmharicTerm)
}

func Test_gormVocabularyRepository_FindByAmharicTerm(t *testing.T) {
	ctx := context.Background()
	repo := NewGormVocabularyRepository()
	db := setupTestDBVocab(t)

	created := createVocabItem(t, db, "ውሃ", strPtr("Wasser"), "l1")

	t.Run("正常系: 既存の語が見つかる", func(t *testing.T) {
		item, err := repo.FindByAmharicTerm(ctx, db, "ውሃ")
		require.NoError(t, err)
		assert.Equal(t, created.WordID, item.WordID)
	})

	t.Run("異常系: 存在しない語はErrNotFound", func(t *testing.T) {
		item, err := repo.FindByAmharicTerm(ctx, db, "የለም")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, item)
	})
}

//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"linguaquest/internal/config"
	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/repository"
	"linguaquest/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	GetDueWords(ctx context.Context, userID uuid.UUID, lang model.Language, lesson string) ([]*model.DueItemResponse, error)
	SubmitAnswer(ctx context.Context, userID, wordID uuid.UUID, isCorrect bool) (*model.SubmitAnswerResponse, error)
}

type reviewService struct {
	db         *gorm.DB
	vocabRepo  repository.VocabularyRepository
	reviewRepo repository.ReviewRepository
	cfg        *config.Config
}

func NewReviewService(db *gorm.DB, vocabRepo repository.VocabularyRepository, reviewRepo repository.ReviewRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:         db,
		vocabRepo:  vocabRepo,
		reviewRepo: reviewRepo,
		cfg:        cfg,
	}
}

// GetDueWords は今日出題すべき語のバッチを返します。
// 出すものが無ければ空のスライスを返す（エラーではない）。
func (s *reviewService) GetDueWords(ctx context.Context, userID uuid.UUID, lang model.Language, lesson string) ([]*model.DueItemResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	words, err := s.vocabRepo.FindDue(ctx, s.db, userID, lang, lesson, time.Now(), s.cfg.App.ReviewLimit)
	if err != nil {
		logger.Error("Failed to find due words from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習対象の取得に失敗しました。", "", model.ErrInternalServer)
	}

	responses := make([]*model.DueItemResponse, 0, len(words))
	for _, w := range words {
		responses = append(responses, &model.DueItemResponse{
			WordID:  w.WordID,
			Amharic: w.AmharicTerm,
			Term:    w.Term,
			Lesson:  w.Lesson,
			Level:   w.Level,
		})
	}

	logger.Info("Successfully retrieved due words", "count", len(responses), "lang", lang.String())
	return responses, nil
}

// SubmitAnswer は1回の回答をレビュー記録に反映します。
// 記録が無ければレベル0からの初回回答として遅延作成する。
func (s *reviewService) SubmitAnswer(ctx context.Context, userID, wordID uuid.UUID, isCorrect bool) (*model.SubmitAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "word_id", wordID)

	// 語彙が実在しないIDへの回答は書き込み前に弾く
	if _, err := s.vocabRepo.FindByID(ctx, s.db, wordID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "対象の語彙が見つかりません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Error finding vocabulary item", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語彙の確認中にエラーが発生しました。", "", model.ErrInternalServer)
	}

	var resp *model.SubmitAnswerResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		currentLevel := 0
		record, err := s.reviewRepo.FindForUpdate(ctx, tx, userID, wordID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding review record in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "レビュー記録の確認中にエラーが発生しました。", "", model.ErrInternalServer)
		}
		if record != nil {
			currentLevel = record.Level
		}

		next := srs.NextReview(currentLevel, isCorrect, time.Now())

		newRecord := &model.ReviewRecord{
			UserID:         userID,
			WordID:         wordID,
			Level:          next.Level,
			NextDueDate:    next.NextDueDate,
			LastReviewedAt: &next.ReviewedAt,
		}
		if err := s.reviewRepo.Upsert(ctx, tx, newRecord); err != nil {
			logger.Error("Error upserting review record", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "レビュー記録の更新に失敗しました。", "", model.ErrInternalServer)
		}

		resp = &model.SubmitAnswerResponse{
			WordID:      wordID,
			Level:       next.Level,
			NextDueDate: next.NextDueDate.Format(model.DateLayout),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Review answer applied", "is_correct", isCorrect, "new_level", resp.Level)
	return resp, nil
}

//go:generate mockery --name VocabularyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/repository"

	"gorm.io/gorm"
)

type VocabularyService interface {
	ListVocabulary(ctx context.Context, lang model.Language) ([]*model.VocabularyItemResponse, error)
}

type vocabularyService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
}

func NewVocabularyService(db *gorm.DB, vocabRepo repository.VocabularyRepository) VocabularyService {
	return &vocabularyService{
		db:        db,
		vocabRepo: vocabRepo,
	}
}

// ListVocabulary は指定言語の訳語を持つカタログ全体を返します
func (s *vocabularyService) ListVocabulary(ctx context.Context, lang model.Language) ([]*model.VocabularyItemResponse, error) {
	logger := middleware.GetLogger(ctx)

	items, err := s.vocabRepo.ListByLanguage(ctx, s.db, lang)
	if err != nil {
		logger.Error("Failed to list vocabulary from repository", "error", err, "lang", lang.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語彙一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}

	responses := make([]*model.VocabularyItemResponse, 0, len(items))
	for _, item := range items {
		term, ok := item.TermIn(lang)
		if !ok {
			// ListByLanguageで除外済みのはずだが、念のためスキップ
			continue
		}
		responses = append(responses, &model.VocabularyItemResponse{
			WordID:  item.WordID,
			Amharic: item.AmharicTerm,
			Term:    term,
			Lesson:  item.Lesson,
		})
	}

	logger.Info("Vocabulary catalog listed", "count", len(responses), "lang", lang.String())
	return responses, nil
}

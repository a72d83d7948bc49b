//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
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

type ProgressService interface {
	CompleteSession(ctx context.Context, userID uuid.UUID, req *model.CompleteSessionRequest) (*model.CompleteSessionResponse, error)
	GetProgress(ctx context.Context, userID uuid.UUID) (*model.ProgressResponse, error)
}

type progressService struct {
	db       *gorm.DB
	progRepo repository.ProgressRepository
	cfg      *config.Config
}

func NewProgressService(db *gorm.DB, progRepo repository.ProgressRepository, cfg *config.Config) ProgressService {
	return &progressService{
		db:       db,
		progRepo: progRepo,
		cfg:      cfg,
	}
}

// CompleteSession はセッション完了を1回分だけ集計に反映します。
// XPは得点によらず固定額（完了報酬）。ストリーク遷移はここでのみ起こす。
// 回答ごとの呼び出しでストリークを動かしてはいけない。
func (s *progressService) CompleteSession(ctx context.Context, userID uuid.UUID, req *model.CompleteSessionRequest) (*model.CompleteSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "mode", req.Mode)

	award := s.cfg.App.SessionExperience
	var resp *model.CompleteSessionResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.progRepo.FindForUpdate(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				// 進捗行は登録時に必ず作られる。無いならユーザー不在であり、
				// ここで0埋めの行をでっち上げてはいけない。
				logger.Warn("User progress not found on session completion")
				return model.NewAppError("NOT_FOUND", "ユーザーの進捗が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error finding progress in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の確認中にエラーが発生しました。", "", model.ErrInternalServer)
		}

		streak := srs.AdvanceStreak(srs.StreakState{
			Current:      progress.CurrentStreak,
			Longest:      progress.LongestStreak,
			LastActivity: progress.LastActivityDate,
		}, time.Now())

		progress.CurrentStreak = streak.Current
		progress.LongestStreak = streak.Longest
		progress.LastActivityDate = streak.LastActivity

		if err := s.progRepo.Update(ctx, tx, progress); err != nil {
			logger.Error("Error updating progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の更新に失敗しました。", "", model.ErrInternalServer)
		}

		// XPはストリークと同じロックの下で加算UPDATEする
		if err := s.progRepo.AddExperience(ctx, tx, userID, award); err != nil {
			logger.Error("Error adding experience", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "経験値の加算に失敗しました。", "", model.ErrInternalServer)
		}

		resp = &model.CompleteSessionResponse{
			ExperienceAwarded: award,
			TotalExperience:   progress.Experience + award,
			CurrentStreak:     progress.CurrentStreak,
			LongestStreak:     progress.LongestStreak,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Session completed",
		"score", req.Score,
		"total_questions", req.TotalQuestions,
		"experience_awarded", award,
		"current_streak", resp.CurrentStreak,
	)
	return resp, nil
}

func (s *progressService) GetProgress(ctx context.Context, userID uuid.UUID) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	progress, err := s.progRepo.Find(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "ユーザーの進捗が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", model.ErrInternalServer)
	}

	resp := &model.ProgressResponse{
		Experience:    progress.Experience,
		CurrentStreak: progress.CurrentStreak,
		LongestStreak: progress.LongestStreak,
	}
	if progress.LastActivityDate != nil {
		resp.LastActivityDate = progress.LastActivityDate.Format(model.DateLayout)
	}
	return resp, nil
}

// internal/service/progress_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"linguaquest/internal/config"
	"linguaquest/internal/model"
	"linguaquest/internal/repository/mocks"
	"linguaquest/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBProgress(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserProgress{}))
	return db
}

// --- Test CompleteSession ---
func Test_progressService_CompleteSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBProgress(t)
	testConfig := &config.Config{
		App: config.AppConfig{SessionExperience: 50},
	}

	userID := uuid.New()
	req := &model.CompleteSessionRequest{Mode: model.SessionModeVocabulary, Score: 8, TotalQuestions: 10}

	now := time.Now()
	today := srs.DateOf(now)
	yesterday := today.AddDate(0, 0, -1)
	fiveDaysAgo := today.AddDate(0, 0, -5)

	tests := []struct {
		name        string
		setupMock   func(m *mocks.ProgressRepository)
		wantErr     error
		wantAwarded int
		wantTotal   int
		wantCurrent int
		wantLongest int
	}{
		{
			name: "正常系: 初回セッション完了でストリーク1",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(&model.UserProgress{UserID: userID}, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(p *model.UserProgress) bool {
					// 行の書き込みはストリーク分のみ。XPはAddExperienceで積む
					assert.Equal(t, 0, p.Experience)
					assert.Equal(t, 1, p.CurrentStreak)
					assert.Equal(t, 1, p.LongestStreak)
					require.NotNil(t, p.LastActivityDate)
					assert.Equal(t, today, *p.LastActivityDate)
					return true
				})).Return(nil).Once()
				m.On("AddExperience", ctx, mock.AnythingOfType("*gorm.DB"), userID, 50).
					Return(nil).Once()
			},
			wantAwarded: 50,
			wantTotal:   50,
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name: "正常系: 昨日活動済みならストリーク+1",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(&model.UserProgress{
						UserID: userID, Experience: 200,
						CurrentStreak: 3, LongestStreak: 5, LastActivityDate: &yesterday,
					}, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserProgress")).
					Return(nil).Once()
				m.On("AddExperience", ctx, mock.AnythingOfType("*gorm.DB"), userID, 50).
					Return(nil).Once()
			},
			wantAwarded: 50,
			wantTotal:   250,
			wantCurrent: 4,
			wantLongest: 5,
		},
		{
			name: "正常系: 同日2回目はストリーク据え置き、XPは加算",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(&model.UserProgress{
						UserID: userID, Experience: 100,
						CurrentStreak: 2, LongestStreak: 4, LastActivityDate: &today,
					}, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(p *model.UserProgress) bool {
					assert.Equal(t, 2, p.CurrentStreak)
					assert.Equal(t, 100, p.Experience)
					return true
				})).Return(nil).Once()
				m.On("AddExperience", ctx, mock.AnythingOfType("*gorm.DB"), userID, 50).
					Return(nil).Once()
			},
			wantAwarded: 50,
			wantTotal:   150,
			wantCurrent: 2,
			wantLongest: 4,
		},
		{
			name: "正常系: 2日以上空いたらストリークは1にリセット",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(&model.UserProgress{
						UserID: userID, Experience: 500,
						CurrentStreak: 10, LongestStreak: 10, LastActivityDate: &fiveDaysAgo,
					}, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserProgress")).
					Return(nil).Once()
				m.On("AddExperience", ctx, mock.AnythingOfType("*gorm.DB"), userID, 50).
					Return(nil).Once()
			},
			wantAwarded: 50,
			wantTotal:   550,
			wantCurrent: 1,
			wantLongest: 10,
		},
		{
			name: "正常系: 最長記録の更新",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(&model.UserProgress{
						UserID: userID, Experience: 0,
						CurrentStreak: 7, LongestStreak: 7, LastActivityDate: &yesterday,
					}, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserProgress")).
					Return(nil).Once()
				m.On("AddExperience", ctx, mock.AnythingOfType("*gorm.DB"), userID, 50).
					Return(nil).Once()
			},
			wantAwarded: 50,
			wantTotal:   50,
			wantCurrent: 8,
			wantLongest: 8,
		},
		{
			name: "異常系: 進捗行が存在しない（でっち上げない）",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: UpdateでDBエラー",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(&model.UserProgress{UserID: userID}, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserProgress")).
					Return(errors.New("db error on update")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
		{
			name: "異常系: XP加算でDBエラーならトランザクション全体が失敗",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(&model.UserProgress{UserID: userID}, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserProgress")).
					Return(nil).Once()
				m.On("AddExperience", ctx, mock.AnythingOfType("*gorm.DB"), userID, 50).
					Return(errors.New("db error on add experience")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProgRepo := new(mocks.ProgressRepository)
			progressService := NewProgressService(db, mockProgRepo, testConfig)

			if tt.setupMock != nil {
				tt.setupMock(mockProgRepo)
			}

			resp, err := progressService.CompleteSession(ctx, userID, req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, tt.wantAwarded, resp.ExperienceAwarded)
				assert.Equal(t, tt.wantTotal, resp.TotalExperience)
				assert.Equal(t, tt.wantCurrent, resp.CurrentStreak)
				assert.Equal(t, tt.wantLongest, resp.LongestStreak)
			}

			mockProgRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetProgress ---
func Test_progressService_GetProgress(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBProgress(t)
	testConfig := &config.Config{}

	userID := uuid.New()
	lastActivity := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(m *mocks.ProgressRepository)
		wantErr   error
		wantResp  *model.ProgressResponse
	}{
		{
			name: "正常系: 進捗サマリ取得",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("Find", ctx, db, userID).
					Return(&model.UserProgress{
						UserID: userID, Experience: 300,
						CurrentStreak: 4, LongestStreak: 9, LastActivityDate: &lastActivity,
					}, nil).Once()
			},
			wantResp: &model.ProgressResponse{
				Experience:       300,
				CurrentStreak:    4,
				LongestStreak:    9,
				LastActivityDate: "2026-08-30",
			},
		},
		{
			name: "正常系: 未活動ユーザーは日付が空文字",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("Find", ctx, db, userID).
					Return(&model.UserProgress{UserID: userID}, nil).Once()
			},
			wantResp: &model.ProgressResponse{},
		},
		{
			name: "異常系: 進捗行が存在しない",
			setupMock: func(m *mocks.ProgressRepository) {
				m.On("Find", ctx, db, userID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProgRepo := new(mocks.ProgressRepository)
			progressService := NewProgressService(db, mockProgRepo, testConfig)

			if tt.setupMock != nil {
				tt.setupMock(mockProgRepo)
			}

			resp, err := progressService.GetProgress(ctx, userID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantResp, resp)
			}

			mockProgRepo.AssertExpectations(t)
		})
	}
}

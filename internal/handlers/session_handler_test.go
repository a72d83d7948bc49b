// internal/handlers/session_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"linguaquest/internal/handlers"
	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	svc_mocks "linguaquest/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSessionRouter(mockService *svc_mocks.ProgressService) http.Handler {
	handler := handlers.NewSessionHandler(mockService)
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Post("/sessions/complete", handler.CompleteSession)
		r.Get("/progress", handler.GetProgress)
	})
	return r
}

// --- Test CompleteSession ---
func TestSessionHandler_CompleteSession(t *testing.T) {
	userID := uuid.New()

	validReq := model.CompleteSessionRequest{
		Mode:           model.SessionModeVocabulary,
		Score:          8,
		TotalQuestions: 10,
	}

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(m *svc_mocks.ProgressService)
		wantStatus int
		wantBody   func(t *testing.T, body []byte)
	}{
		{
			name: "正常系: セッション完了で集計サマリが返る",
			body: validReq,
			setupMock: func(m *svc_mocks.ProgressService) {
				m.On("CompleteSession", mock.Anything, userID, mock.MatchedBy(func(req *model.CompleteSessionRequest) bool {
					return req.Mode == model.SessionModeVocabulary && req.Score == 8 && req.TotalQuestions == 10
				})).Return(&model.CompleteSessionResponse{
					ExperienceAwarded: 50,
					TotalExperience:   250,
					CurrentStreak:     4,
					LongestStreak:     9,
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: func(t *testing.T, body []byte) {
				var resp model.CompleteSessionResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 50, resp.ExperienceAwarded)
				assert.Equal(t, 250, resp.TotalExperience)
				assert.Equal(t, 4, resp.CurrentStreak)
				assert.Equal(t, 9, resp.LongestStreak)
			},
		},
		{
			name:       "異常系: 未知のモードは400",
			body:       model.CompleteSessionRequest{Mode: "osmosis", Score: 1, TotalQuestions: 1},
			setupMock:  func(m *svc_mocks.ProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "異常系: total_questionsが0は400",
			body:       model.CompleteSessionRequest{Mode: model.SessionModeMatching, Score: 0, TotalQuestions: 0},
			setupMock:  func(m *svc_mocks.ProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 進捗行が無いユーザーは404",
			body: validReq,
			setupMock: func(m *svc_mocks.ProgressService) {
				m.On("CompleteSession", mock.Anything, userID, mock.AnythingOfType("*model.CompleteSessionRequest")).
					Return(nil, model.NewAppError("NOT_FOUND", "ユーザーの進捗が見つかりません。", "", model.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody: func(t *testing.T, body []byte) {
				var resp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "NOT_FOUND", resp.Error.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.ProgressService)
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}
			router := setupSessionRouter(mockService)

			req := newJSONRequest(t, http.MethodPost, "/sessions/complete", tt.body)
			req.Header.Set("X-User-ID", userID.String())
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != nil {
				tt.wantBody(t, rec.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}

// --- Test GetProgress ---
func TestSessionHandler_GetProgress(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 進捗サマリが返る", func(t *testing.T) {
		mockService := new(svc_mocks.ProgressService)
		mockService.On("GetProgress", mock.Anything, userID).
			Return(&model.ProgressResponse{
				Experience:       300,
				CurrentStreak:    4,
				LongestStreak:    9,
				LastActivityDate: "2026-08-31",
			}, nil).Once()
		router := setupSessionRouter(mockService)

		req := newJSONRequest(t, http.MethodGet, "/progress", nil)
		req.Header.Set("X-User-ID", userID.String())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp model.ProgressResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 300, resp.Experience)
		assert.Equal(t, "2026-08-31", resp.LastActivityDate)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 認証ヘッダー無しは403", func(t *testing.T) {
		mockService := new(svc_mocks.ProgressService)
		router := setupSessionRouter(mockService)

		req := newJSONRequest(t, http.MethodGet, "/progress", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		mockService.AssertExpectations(t)
	})
}

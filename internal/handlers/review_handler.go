package handlers

import (
	"errors"
	"net/http"

	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/service"
	"linguaquest/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// GetDueWords は今日の復習バッチを返します。
// lang クエリは必須、lesson は任意の絞り込み。
func (h *ReviewHandler) GetDueWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	lang, err := model.ParseLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		logger.Warn("Invalid or missing lang query parameter", "lang", r.URL.Query().Get("lang"))
		appErr := model.NewAppError("INVALID_LANGUAGE", "対応していない言語コードです。(de, en, fr, es)", "lang", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	lesson := r.URL.Query().Get("lesson")

	dueWords, err := h.service.GetDueWords(r.Context(), userID, lang, lesson)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// 出題対象ゼロは正常（空配列を返す）
	if dueWords == nil {
		dueWords = []*model.DueItemResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, dueWords)
}

// SubmitAnswer は1語への回答を受け付け、更新後のスケジュールを返します
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	wordIDStr := chi.URLParam(r, "word_id")
	wordID, err := uuid.Parse(wordIDStr)
	if err != nil {
		logger.Warn("Invalid word ID format", "word_id", wordIDStr)
		appErr := model.NewAppError("INVALID_WORD_ID", "語彙IDの形式が正しくありません。", "word_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid answer request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitAnswer(r.Context(), userID, wordID, *req.IsCorrect)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error submitting answer", "error", err, "word_id", wordIDStr)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

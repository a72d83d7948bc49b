package handlers

import (
	"net/http"

	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/service"
	"linguaquest/internal/webutil"
)

type SentenceHandler struct {
	service service.SentenceService
}

func NewSentenceHandler(s service.SentenceService) *SentenceHandler {
	return &SentenceHandler{service: s}
}

// GenerateSentence は穴埋め練習用の例文を生成して返します
func (h *SentenceHandler) GenerateSentence(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	lang, err := model.ParseLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		logger.Warn("Invalid or missing lang query parameter", "lang", r.URL.Query().Get("lang"))
		appErr := model.NewAppError("INVALID_LANGUAGE", "対応していない言語コードです。(de, en, fr, es)", "lang", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	sentence, err := h.service.GenerateClozeSentence(r.Context(), lang)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, sentence)
}

package handlers

import (
	"net/http"

	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/service"
	"linguaquest/internal/webutil"
)

type VocabularyHandler struct {
	service service.VocabularyService
}

func NewVocabularyHandler(s service.VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{service: s}
}

// ListVocabulary は指定言語のカタログ一覧を返します
func (h *VocabularyHandler) ListVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	lang, err := model.ParseLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		logger.Warn("Invalid or missing lang query parameter", "lang", r.URL.Query().Get("lang"))
		appErr := model.NewAppError("INVALID_LANGUAGE", "対応していない言語コードです。(de, en, fr, es)", "lang", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	items, err := h.service.ListVocabulary(r.Context(), lang)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []*model.VocabularyItemResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items)
}

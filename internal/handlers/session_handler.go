package handlers

import (
	"net/http"

	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/service"
	"linguaquest/internal/webutil"
)

type SessionHandler struct {
	service service.ProgressService
}

func NewSessionHandler(s service.ProgressService) *SessionHandler {
	return &SessionHandler{service: s}
}

// CompleteSession はセッション完了を記録し、XP付与とストリーク更新の結果を返します
func (h *SessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CompleteSessionRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid session completion request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.CompleteSession(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetProgress は認証済みユーザーの進捗サマリを返します
func (h *SessionHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

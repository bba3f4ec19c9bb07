// internal/handlers/session_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_trainer/internal/model"
	"vocab_trainer/internal/service"
	"vocab_trainer/internal/webutil"
)

type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// PrepareSession は練習セッションを組み立てて返すためのハンドラ。
// limitの範囲外はService層で黙ってクランプされます。
func (h *SessionHandler) PrepareSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PrepareSession"))

	var req model.PrepareSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Message))
		webutil.HandleError(w, logger, appErr)
		return
	}

	session, err := h.service.BuildSession(r.Context(), req.Limit, req.Language)
	if err != nil {
		logger.Warn("Error building session in service", slog.Any("error", err), slog.String("language", req.Language))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session prepared",
		slog.Int("selected", session.Counts.Selected),
		slog.Int("due", session.Counts.Due),
	)
	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_trainer/internal/model"
	"vocab_trainer/internal/service"
	"vocab_trainer/internal/srs"
	"vocab_trainer/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// SubmitResult は復習結果を記録するためのハンドラ
func (h *ReviewHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitResult"))

	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.SubmitResultRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	// スキップ時はcorrectの有無を問わない
	if !req.Skipped {
		if appErr := webutil.ValidateStruct(req); appErr != nil {
			logger.Warn("Validation failed", slog.String("error", appErr.Message))
			webutil.HandleError(w, logger, appErr)
			return
		}
	}

	res := srs.Result{
		UsedHint: req.UsedHint,
		Skipped:  req.Skipped,
	}
	if req.Correct != nil {
		res.Correct = *req.Correct
	}

	state, err := h.service.SubmitResult(r.Context(), wordID, res)
	if err != nil {
		logger.Warn("Error submitting review result in service", slog.Any("error", err), slog.String("word_id", wordID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// GetDueCount は復習対象数を返すためのハンドラ
func (h *ReviewHandler) GetDueCount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueCount"))

	language := r.URL.Query().Get("language")

	count, err := h.service.GetDueCount(r.Context(), language)
	if err != nil {
		logger.Error("Error getting due count in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.DueCountResponse{DueCount: count, Language: language}, logger)
}

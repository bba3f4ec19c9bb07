// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_trainer/internal/model"
	"vocab_trainer/internal/service"
	"vocab_trainer/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// PostWord は新しい単語リソースを作成するためのハンドラ
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWord"))

	var req model.PostWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Message), slog.Any("request", req))
		webutil.HandleError(w, logger, appErr)
		return
	}

	word, err := h.service.PostWord(r.Context(), &req)
	if err != nil {
		logger.Error("Error posting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word posted successfully", slog.String("word_id", word.WordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// GetWords は単語リソースの一覧を取得するためのハンドラ。
// source_lang + target_lang あるいは domain のクエリで絞り込めます。
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	var (
		words []*model.Word
		err   error
	)

	sourceLang := r.URL.Query().Get("source_lang")
	targetLang := r.URL.Query().Get("target_lang")
	domain := r.URL.Query().Get("domain")

	switch {
	case sourceLang != "" && targetLang != "":
		words, err = h.service.GetWordsByLanguagePair(r.Context(), sourceLang, targetLang)
	case domain != "":
		words, err = h.service.GetWordsByDomain(r.Context(), domain)
	default:
		words, err = h.service.GetWords(r.Context())
	}
	if err != nil {
		logger.Error("Error listing words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	logger.Info("Words listed successfully", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// GetWord は単語リソースを1件取得するためのハンドラ
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWord"))

	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	word, err := h.service.GetWord(r.Context(), wordID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PatchWord は単語リソースを部分更新するためのハンドラ
func (h *WordHandler) PatchWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchWord"))

	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.PatchWordRequest
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

	word, err := h.service.PatchWord(r.Context(), wordID, &req)
	if err != nil {
		logger.Error("Error patching word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// DeleteWord は単語リソースを削除するためのハンドラ。冪等です。
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWord"))

	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteWord(r.Context(), wordID); err != nil {
		logger.Error("Error deleting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAllWords は語彙を全削除し、削除件数を返すためのハンドラ
func (h *WordHandler) DeleteAllWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAllWords"))

	deleted, err := h.service.DeleteAllWords(r.Context())
	if err != nil {
		logger.Error("Error deleting all words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("All words deleted successfully", slog.Int64("count", deleted))
	webutil.RespondWithJSON(w, http.StatusOK, model.DeleteAllResponse{Deleted: deleted}, logger)
}

// GetStats は語彙全体の集計を返すためのハンドラ
func (h *WordHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		logger.Error("Error getting stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// GetLanguages は登録済みの原文言語一覧を返すためのハンドラ
func (h *WordHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLanguages"))

	langs, err := h.service.GetAvailableLanguages(r.Context())
	if err != nil {
		logger.Error("Error getting languages in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if langs == nil {
		langs = []string{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.LanguagesResponse{Languages: langs}, logger)
}

// parseWordID はURLパラメータのword_idを解釈します
func parseWordID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	wordIDStr := chi.URLParam(r, "word_id")
	wordID, err := uuid.Parse(wordIDStr)
	if err != nil {
		logger.Warn("Invalid word ID format", slog.String("word_id", wordIDStr))
		appErr := model.NewAppError("INVALID_WORD_ID", "単語IDの形式が正しくありません。", "word_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return wordID, true
}

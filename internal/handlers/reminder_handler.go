// internal/handlers/reminder_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"vocab_trainer/internal/clock"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/service"
	"vocab_trainer/internal/webutil"
)

type ReminderHandler struct {
	service service.ReminderService
	clk     clock.Clock
	logger  *slog.Logger
}

func NewReminderHandler(s service.ReminderService, clk clock.Clock, logger *slog.Logger) *ReminderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderHandler{
		service: s,
		clk:     clk,
		logger:  logger,
	}
}

// reminderCheckRequest は設定コラボレータから渡される生設定を含むDTO
type reminderCheckRequest struct {
	Settings model.RawReminderSettings `json:"settings"`
	Language string                    `json:"language,omitempty"`
	Existing string                    `json:"existing,omitempty"` // RFC3339。再スケジュール時のみ。
}

type reminderDueResponse struct {
	Due          bool               `json:"due"`
	UsedDefaults bool               `json:"used_defaults"`
	Notification model.Notification `json:"notification"`
}

// CheckDue は「今通知すべきか」の時点判定と通知ペイロードを返すためのハンドラ。
// 設定が壊れていてもエラーにせずデフォルトで判定します。
func (h *ReminderHandler) CheckDue(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CheckDue"))

	var req reminderCheckRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	settings, usedDefaults := h.service.NormalizeSettings(req.Settings)
	if usedDefaults {
		logger.Warn("Reminder settings were malformed, defaults substituted")
	}

	now := h.clk.Now()
	due := h.service.IsDueNow(settings, now)

	resp := reminderDueResponse{
		Due:          due,
		UsedDefaults: usedDefaults,
	}
	if due {
		resp.Notification = h.service.BuildNotification(r.Context(), settings, req.Language)
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

type nextFireResponse struct {
	Decision     model.FireDecision `json:"decision"`
	UsedDefaults bool               `json:"used_defaults"`
}

// NextFireTime は次回の通知時刻を計算して返すためのハンドラ。
// existingを渡すと冪等な再スケジュール判定を行います。
func (h *ReminderHandler) NextFireTime(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "NextFireTime"))

	var req reminderCheckRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	settings, usedDefaults := h.service.NormalizeSettings(req.Settings)

	now := h.clk.Now()
	var decision model.FireDecision
	if req.Existing != "" {
		existing, err := time.Parse(time.RFC3339, req.Existing)
		if err != nil {
			logger.Warn("Invalid existing fire time, recomputing from scratch", slog.String("existing", req.Existing))
			decision = h.service.ComputeNextFireTime(settings, now)
		} else {
			decision = h.service.RescheduleFrom(existing, settings, now)
		}
	} else {
		decision = h.service.ComputeNextFireTime(settings, now)
	}

	webutil.RespondWithJSON(w, http.StatusOK, nextFireResponse{Decision: decision, UsedDefaults: usedDefaults}, logger)
}

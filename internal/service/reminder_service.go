// internal/service/reminder_service.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vocab_trainer/internal/config"
	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
)

// ReminderService はリマインダー通知の発火判定を担います。
// 時刻計算は純粋で、実際のタイマー登録と配信は外部コラボレータの責務です。
type ReminderService interface {
	NormalizeSettings(raw model.RawReminderSettings) (model.ReminderSettings, bool)
	ComputeNextFireTime(settings model.ReminderSettings, now time.Time) model.FireDecision
	RescheduleFrom(existing time.Time, settings model.ReminderSettings, now time.Time) model.FireDecision
	IsDueNow(settings model.ReminderSettings, now time.Time) bool
	DueCountForReminder(ctx context.Context, language string) *int64
	BuildNotification(ctx context.Context, settings model.ReminderSettings, language string) model.Notification
}

type reminderService struct {
	reviews ReviewService
}

func NewReminderService(reviews ReviewService) ReminderService {
	return &reminderService{reviews: reviews}
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// NormalizeSettings は外部由来の設定を正規化します。
// 2番目の戻り値は、壊れた値をデフォルトで置き換えたかどうかを示します。
// 通知は設定が壊れていても止めない方針なので、ここでエラーは返しません。
func (s *reminderService) NormalizeSettings(raw model.RawReminderSettings) (model.ReminderSettings, bool) {
	usedDefaults := false

	hour, minute, ok := parseTimeOfDay(raw.Time)
	if !ok {
		hour, minute, _ = parseTimeOfDay(config.DefaultReminderTime)
		usedDefaults = true
	}

	var days []time.Weekday
	seen := make(map[time.Weekday]bool)
	for _, name := range raw.Days {
		d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			usedDefaults = true
			continue
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		// 曜日未指定は毎日
		days = []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}
		if len(raw.Days) > 0 {
			usedDefaults = true
		}
	}

	difficulty := strings.ToLower(strings.TrimSpace(raw.Difficulty))
	switch difficulty {
	case "easy", "normal", "hard":
	default:
		difficulty = config.DefaultReminderDifficulty
		if raw.Difficulty != "" {
			usedDefaults = true
		}
	}

	questions := raw.QuestionsPerSession
	if questions <= 0 {
		questions = config.DefaultQuestionsPerSession
	}
	if questions > config.MaxSessionLimit {
		questions = config.MaxSessionLimit
		usedDefaults = true
	}

	return model.ReminderSettings{
		Enabled:             raw.Enabled,
		Hour:                hour,
		Minute:              minute,
		Days:                days,
		Difficulty:          difficulty,
		QuestionsPerSession: questions,
	}, usedDefaults
}

// ComputeNextFireTime は次の通知時刻を計算します。
// 今日の設定時刻がまだ来ていなければ今日、来ていれば次の有効な曜日。
func (s *reminderService) ComputeNextFireTime(settings model.ReminderSettings, now time.Time) model.FireDecision {
	if !settings.Enabled {
		return model.FireDecision{Skipped: true, Reason: "disabled"}
	}

	for offset := 0; offset < 8; offset++ {
		day := now.AddDate(0, 0, offset)
		if !settings.EnabledOn(day.Weekday()) {
			continue
		}
		candidate := time.Date(day.Year(), day.Month(), day.Day(), settings.Hour, settings.Minute, 0, 0, now.Location())
		if candidate.After(now) {
			return model.FireDecision{At: candidate}
		}
	}

	// EnabledOnがどの曜日にも一致しないことはNormalizeSettings後は起きない
	return model.FireDecision{Skipped: true, Reason: "no enabled weekday"}
}

// RescheduleFrom は再計算の冪等性を保証します。既存の予定が目標の
// 曜日・時刻と一致していればそれを使い回し、重複発火を防ぎます。
func (s *reminderService) RescheduleFrom(existing time.Time, settings model.ReminderSettings, now time.Time) model.FireDecision {
	next := s.ComputeNextFireTime(settings, now)
	if next.Skipped {
		return next
	}
	if !existing.IsZero() && existing.After(now) &&
		existing.Year() == next.At.Year() && existing.YearDay() == next.At.YearDay() &&
		existing.Hour() == settings.Hour && existing.Minute() == settings.Minute {
		return model.FireDecision{At: existing}
	}
	return next
}

// IsDueNow は「今まさに通知すべきか」の時点判定です。永続化はしません。
func (s *reminderService) IsDueNow(settings model.ReminderSettings, now time.Time) bool {
	if !settings.Enabled {
		return false
	}
	if !settings.EnabledOn(now.Weekday()) {
		return false
	}
	target := time.Date(now.Year(), now.Month(), now.Day(), settings.Hour, settings.Minute, 0, 0, now.Location())
	diff := now.Sub(target)
	if diff < 0 {
		diff = -diff
	}
	return diff <= config.ReminderToleranceMinutes*time.Minute
}

// DueCountForReminder は復習対象数を返します。通知の本文を豊かにするためだけの
// 値なので、取得に失敗してもエラーにせずnilを返します。
func (s *reminderService) DueCountForReminder(ctx context.Context, language string) *int64 {
	logger := middleware.GetLogger(ctx)

	count, err := s.reviews.GetDueCount(ctx, language)
	if err != nil {
		logger.Warn("Failed to get due count for reminder, degrading to generic copy", "error", err)
		return nil
	}
	return &count
}

// BuildNotification は通知コラボレータに渡すペイロードを組み立てます
func (s *reminderService) BuildNotification(ctx context.Context, settings model.ReminderSettings, language string) model.Notification {
	dueCount := s.DueCountForReminder(ctx, language)

	body := "復習の時間です。"
	if dueCount != nil {
		body = fmt.Sprintf("復習の時間です。%d件の単語が復習待ちです。", *dueCount)
	}

	return model.Notification{
		Title:    config.AppName,
		Body:     body,
		DueCount: dueCount,
	}
}

// parseTimeOfDay は "HH:MM" を解釈します。壊れた値はokがfalseになります。
func parseTimeOfDay(value string) (hour, minute int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

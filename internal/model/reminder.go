// internal/model/reminder.go
package model

import "time"

// RawReminderSettings は外部から渡される生のリマインダー設定です。
// 動的な設定画面由来のため、正規化前の値は信用しません。
type RawReminderSettings struct {
	Enabled             bool     `json:"enabled"`
	Time                string   `json:"time"` // "HH:MM" 形式を期待するが保証はない
	Days                []string `json:"days"` // "mon".."sun"
	Difficulty          string   `json:"difficulty"`
	QuestionsPerSession int      `json:"questions_per_session"`
}

// ReminderSettings は正規化済みのリマインダー設定です
type ReminderSettings struct {
	Enabled             bool           `json:"enabled"`
	Hour                int            `json:"hour"`
	Minute              int            `json:"minute"`
	Days                []time.Weekday `json:"days"`
	Difficulty          string         `json:"difficulty"`
	QuestionsPerSession int            `json:"questions_per_session"`
}

// EnabledOn は指定の曜日が通知対象かを返します
func (s ReminderSettings) EnabledOn(d time.Weekday) bool {
	for _, day := range s.Days {
		if day == d {
			return true
		}
	}
	return false
}

// FireDecision は次回通知時刻の計算結果です
type FireDecision struct {
	Skipped bool      `json:"skipped"`
	Reason  string    `json:"reason,omitempty"` // Skipped時のみ
	At      time.Time `json:"at,omitempty"`
}

// Notification は通知コラボレータに渡すペイロードです。
// 配信の仕組み自体はこのサービスの関心外です。
type Notification struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	DueCount *int64 `json:"due_count,omitempty"` // 取得失敗時はnil
}

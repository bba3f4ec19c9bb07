// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewState は単語1件に対する間隔反復の学習状態を表します
type ReviewState struct {
	StateID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	WordID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	BoxIndex       int        `gorm:"not null;default:0" json:"box_index"`     // Leitnerの箱 (0..MaxBox)
	TotalCorrect   int        `gorm:"not null;default:0" json:"total_correct"` // 累計正解数
	TotalWrong     int        `gorm:"not null;default:0" json:"total_wrong"`   // 累計不正解数
	Streak         int        `gorm:"not null;default:0" json:"streak"`        // 連続正解数
	IntervalDays   int        `gorm:"not null;default:0" json:"interval_days"` // 次回復習までの日数
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`              // 未復習ならnil
	DueAt          time.Time  `gorm:"index" json:"due_at"`                     // ゼロ値は即時復習対象
	CreatedAt      time.Time  `json:"-"`
	UpdatedAt      time.Time  `json:"-"`

	// 関連 (Preload用)
	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (ReviewState) TableName() string {
	return "review_states"
}

// SubmitResultRequest は復習結果送信リクエストのDTO
type SubmitResultRequest struct {
	Correct  *bool `json:"correct" validate:"required"`
	UsedHint bool  `json:"used_hint"`
	Skipped  bool  `json:"skipped"`
}

// DueCountResponse は復習対象数のレスポンスDTO
type DueCountResponse struct {
	DueCount int64  `json:"due_count"`
	Language string `json:"language,omitempty"`
}

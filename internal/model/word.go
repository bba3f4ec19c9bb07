// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word は収集した語彙エントリ（原文と訳のペア）を表します
type Word struct {
	WordID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	Text               string         `gorm:"not null" json:"text"`                                          // 原文
	Translation        string         `gorm:"not null" json:"translation"`                                   // 訳文
	SourceLang         string         `gorm:"not null;index:idx_lang_pair" json:"source_lang"`               // 原文の言語コード
	TargetLang         string         `gorm:"not null;index:idx_lang_pair" json:"target_lang"`               // 訳文の言語コード
	Context            string         `json:"context,omitempty"`                                             // 文脈（任意）
	ContextTranslation string         `json:"context_translation,omitempty"`                                 // 文脈の訳（任意）
	Domain             string         `gorm:"index" json:"domain,omitempty"`                                 // 収集元ドメイン（任意）
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	ReviewState *ReviewState `gorm:"foreignKey:WordID;references:WordID" json:"review_state,omitempty"`
}

func (Word) TableName() string {
	return "words"
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	Text               string `json:"text" validate:"required"`
	Translation        string `json:"translation" validate:"required"`
	SourceLang         string `json:"source_lang" validate:"required,min=2,max=8"`
	TargetLang         string `json:"target_lang" validate:"required,min=2,max=8"`
	Context            string `json:"context,omitempty" validate:"omitempty,max=500"`
	ContextTranslation string `json:"context_translation,omitempty" validate:"omitempty,max=500"`
	Domain             string `json:"domain,omitempty" validate:"omitempty,max=255"`
}

// 単語更新（部分）リクエストDTO
type PatchWordRequest struct {
	Text               *string `json:"text,omitempty" validate:"omitempty,min=1"`
	Translation        *string `json:"translation,omitempty" validate:"omitempty,min=1"`
	Context            *string `json:"context,omitempty" validate:"omitempty,max=500"`
	ContextTranslation *string `json:"context_translation,omitempty" validate:"omitempty,max=500"`
	Domain             *string `json:"domain,omitempty" validate:"omitempty,max=255"`
}

// StatsResponse は語彙全体の集計のレスポンスDTO
type StatsResponse struct {
	TotalEntries int64 `json:"total_entries"`
	UniqueWords  int64 `json:"unique_words"`
}

// DeleteAllResponse は全削除のレスポンスDTO
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

// LanguagesResponse は利用可能な原文言語のレスポンスDTO
type LanguagesResponse struct {
	Languages []string `json:"languages"`
}

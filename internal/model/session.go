// internal/model/session.go
package model

import "github.com/google/uuid"

// SessionWord は練習セッションに含まれる単語スナップショットのDTO
type SessionWord struct {
	WordID      uuid.UUID `json:"word_id"`
	Text        string    `json:"text"`
	Translation string    `json:"translation"`
	SourceLang  string    `json:"source_lang"`
	TargetLang  string    `json:"target_lang"`
	Context     string    `json:"context,omitempty"`
	BoxIndex    int       `json:"box_index"`
	Due         bool      `json:"due"` // セッション生成時点で復習期限が来ていたか
}

// SessionCounts はセッション生成時の内訳カウント
type SessionCounts struct {
	Total    int `json:"total"`    // 候補となった全単語数
	Due      int `json:"due"`      // うち復習期限が来ていた数
	Selected int `json:"selected"` // 実際に選ばれた数
}

// Session は1回分の練習セッション（非永続）
type Session struct {
	Words    []SessionWord `json:"words"`
	Counts   SessionCounts `json:"counts"`
	Language string        `json:"language,omitempty"` // 言語フィルタ指定時のみ
}

// PrepareSessionRequest はセッション生成リクエストのDTO
type PrepareSessionRequest struct {
	Limit    int    `json:"limit"`
	Language string `json:"language,omitempty" validate:"omitempty,min=2,max=8"`
}

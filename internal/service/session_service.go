// internal/service/session_service.go
package service

import (
	"context"
	"sort"

	"vocab_trainer/internal/clock"
	"vocab_trainer/internal/config"
	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"
	"vocab_trainer/internal/srs"

	"gorm.io/gorm"
)

// SessionService は練習セッションの組み立てを担います。読み取り専用です。
type SessionService interface {
	BuildSession(ctx context.Context, limit int, language string) (*model.Session, error)
}

type sessionService struct {
	db       *gorm.DB
	statRepo repository.ReviewStateRepository
	cfg      *config.Config
	clk      clock.Clock
}

func NewSessionService(db *gorm.DB, statRepo repository.ReviewStateRepository, cfg *config.Config, clk clock.Clock) SessionService {
	return &sessionService{
		db:       db,
		statRepo: statRepo,
		cfg:      cfg,
		clk:      clk,
	}
}

// BuildSession はlimit件以内のセッションを組み立てます。
// 期限が来ている単語を優先し、足りない分は復習が古い順に未期限の単語で埋めます。
// 言語フィルタ指定時に候補が0件ならErrNoWordsForLanguageを返します。
func (s *sessionService) BuildSession(ctx context.Context, limit int, language string) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)

	// 範囲外のlimitは拒否せず黙ってクランプする
	maxLimit := config.MaxSessionLimit
	if s.cfg != nil && s.cfg.App.MaxSessionLimit > 0 {
		maxLimit = s.cfg.App.MaxSessionLimit
	}
	if limit < config.MinSessionLimit {
		limit = config.MinSessionLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	states, err := s.statRepo.FindCandidates(ctx, s.db, language)
	if err != nil {
		logger.Error("Failed to find session candidates", "error", err, "language", language)
		return nil, model.NewAppError("STORAGE_ERROR", "セッション候補の取得に失敗しました。", "", model.ErrStorage)
	}

	if language != "" && len(states) == 0 {
		// 「語彙が空」と「この言語の語彙がない」を呼び出し側で区別できるようにする
		return nil, model.NewAppError("NO_WORDS_FOR_LANGUAGE", "この言語の語彙が登録されていません。", "language", model.ErrNoWordsForLanguage)
	}

	now := s.clk.Now()

	var due, notDue []*model.ReviewState
	for _, st := range states {
		if st.Word == nil {
			logger.Warn("Found review state with nil Word during session build, skipping", "state_id", st.StateID)
			continue
		}
		if srs.IsDue(*st, now) {
			due = append(due, st)
		} else {
			notDue = append(notDue, st)
		}
	}

	// 期限切れ: 未復習を先頭に、期限の古い順。同値はcreated_at、word_idで決定的に。
	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if (a.LastReviewedAt == nil) != (b.LastReviewedAt == nil) {
			return a.LastReviewedAt == nil
		}
		if !a.DueAt.Equal(b.DueAt) {
			return a.DueAt.Before(b.DueAt)
		}
		return lessByCreation(a, b)
	})

	// 埋め合わせ: 復習が最も古いものから
	sort.SliceStable(notDue, func(i, j int) bool {
		a, b := notDue[i], notDue[j]
		if (a.LastReviewedAt == nil) != (b.LastReviewedAt == nil) {
			return a.LastReviewedAt == nil
		}
		if a.LastReviewedAt != nil && b.LastReviewedAt != nil && !a.LastReviewedAt.Equal(*b.LastReviewedAt) {
			return a.LastReviewedAt.Before(*b.LastReviewedAt)
		}
		return lessByCreation(a, b)
	})

	ordered := append(append([]*model.ReviewState{}, due...), notDue...)
	selected := ordered
	if len(selected) > limit {
		selected = selected[:limit]
	}

	words := make([]model.SessionWord, 0, len(selected))
	for _, st := range selected {
		words = append(words, model.SessionWord{
			WordID:      st.WordID,
			Text:        st.Word.Text,
			Translation: st.Word.Translation,
			SourceLang:  st.Word.SourceLang,
			TargetLang:  st.Word.TargetLang,
			Context:     st.Word.Context,
			BoxIndex:    st.BoxIndex,
			Due:         srs.IsDue(*st, now),
		})
	}

	session := &model.Session{
		Words: words,
		Counts: model.SessionCounts{
			Total:    len(due) + len(notDue),
			Due:      len(due),
			Selected: len(words),
		},
		Language: language,
	}

	logger.Info("Session built",
		"total", session.Counts.Total,
		"due", session.Counts.Due,
		"selected", session.Counts.Selected,
		"language", language,
	)
	return session, nil
}

// lessByCreation はセッション順の最終的なタイブレークです
func lessByCreation(a, b *model.ReviewState) bool {
	if a.Word != nil && b.Word != nil && !a.Word.CreatedAt.Equal(b.Word.CreatedAt) {
		return a.Word.CreatedAt.Before(b.Word.CreatedAt)
	}
	return a.WordID.String() < b.WordID.String()
}

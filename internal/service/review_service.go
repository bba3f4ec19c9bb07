// internal/service/review_service.go
package service

import (
	"context"
	"errors"

	"vocab_trainer/internal/clock"
	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"
	"vocab_trainer/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService は復習結果の記録と復習対象数の問い合わせを担います
type ReviewService interface {
	SubmitResult(ctx context.Context, wordID uuid.UUID, res srs.Result) (*model.ReviewState, error)
	GetDueCount(ctx context.Context, language string) (int64, error)
}

type reviewService struct {
	db       *gorm.DB
	statRepo repository.ReviewStateRepository
	clk      clock.Clock
}

func NewReviewService(db *gorm.DB, statRepo repository.ReviewStateRepository, clk clock.Clock) ReviewService {
	return &reviewService{
		db:       db,
		statRepo: statRepo,
		clk:      clk,
	}
}

// SubmitResult は学習状態の読み取り・遷移・書き込みを1トランザクションで行います。
// 同一単語への同時記録はここで直列化されます。
func (s *reviewService) SubmitResult(ctx context.Context, wordID uuid.UUID, res srs.Result) (*model.ReviewState, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID.String())

	var updated *model.ReviewState

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.statRepo.FindByWordID(ctx, tx, wordID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error finding review state in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "学習状態の取得に失敗しました。", "", model.ErrStorage)
		}

		// スキップは状態を一切変更しない
		if res.Skipped {
			updated = state
			return nil
		}

		next := srs.Apply(*state, res, s.clk.Now())
		if err := s.statRepo.Update(ctx, tx, &next); err != nil {
			logger.Error("Error updating review state in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "学習状態の更新に失敗しました。", "", model.ErrStorage)
		}

		updated = &next
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Review result recorded",
		"box_index", updated.BoxIndex,
		"streak", updated.Streak,
		"skipped", res.Skipped,
	)
	return updated, nil
}

func (s *reviewService) GetDueCount(ctx context.Context, language string) (int64, error) {
	logger := middleware.GetLogger(ctx)

	count, err := s.statRepo.CountDue(ctx, s.db, s.clk.Now(), language)
	if err != nil {
		logger.Error("Failed to count due words", "error", err, "language", language)
		return 0, model.NewAppError("STORAGE_ERROR", "復習対象数の取得に失敗しました。", "", model.ErrStorage)
	}
	return count, nil
}

//go:generate mockery --name ReviewStateRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewStateRepository は単語ごとの学習状態の永続化を担います
type ReviewStateRepository interface {
	Create(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error
	FindByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.ReviewState, error)
	Update(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error
	FindCandidates(ctx context.Context, db *gorm.DB, sourceLang string) ([]*model.ReviewState, error)
	CountDue(ctx context.Context, db *gorm.DB, now time.Time, sourceLang string) (int64, error)
	DeleteByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type gormReviewStateRepository struct{}

func NewGormReviewStateRepository() ReviewStateRepository {
	return &gormReviewStateRepository{}
}

func (r *gormReviewStateRepository) Create(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error {
	result := tx.WithContext(ctx).Create(state)
	if result.Error != nil {
		return fmt.Errorf("gormReviewStateRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReviewStateRepository) FindByWordID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.ReviewState, error) {
	var state model.ReviewState
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReviewStateRepository.FindByWordID: %w", result.Error)
	}
	return &state, nil
}

func (r *gormReviewStateRepository) Update(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error {
	// Saveは主キーに基づくUpdate。存在確認は呼び出し元 (Service) が行う。
	result := tx.WithContext(ctx).Save(state)
	if result.Error != nil {
		return fmt.Errorf("gormReviewStateRepository.Update: %w", result.Error)
	}
	return nil
}

// FindCandidates はセッション候補となる学習状態を、削除されていない単語と
// 結合して返します。sourceLangが空でなければ原文言語で絞り込みます。
// 並び替えはService層が行うため、ここでは決定的な取得のみ保証します。
func (r *gormReviewStateRepository) FindCandidates(ctx context.Context, db *gorm.DB, sourceLang string) ([]*model.ReviewState, error) {
	logger := middleware.GetLogger(ctx)
	var states []*model.ReviewState

	query := db.WithContext(ctx).
		Joins("JOIN words ON words.word_id = review_states.word_id AND words.deleted_at IS NULL")
	if sourceLang != "" {
		query = query.Where("words.source_lang = ?", sourceLang)
	}
	result := query.Order("review_states.word_id ASC").Find(&states)
	if result.Error != nil {
		logger.Error("Error finding session candidates in DB",
			"error", result.Error,
			"source_lang", sourceLang,
		)
		return nil, fmt.Errorf("gormReviewStateRepository.FindCandidates: %w", result.Error)
	}

	// PreloadはJoinsと組み合わせると論理削除済みWordを拾い得るため、
	// 候補の単語はWordIDでまとめて取り直す
	if len(states) == 0 {
		return states, nil
	}
	ids := make([]uuid.UUID, 0, len(states))
	for _, s := range states {
		ids = append(ids, s.WordID)
	}
	var words []*model.Word
	if err := db.WithContext(ctx).Where("word_id IN ?", ids).Find(&words).Error; err != nil {
		logger.Error("Error loading candidate words in DB", "error", err)
		return nil, fmt.Errorf("gormReviewStateRepository.FindCandidates: %w", err)
	}
	byID := make(map[uuid.UUID]*model.Word, len(words))
	for _, w := range words {
		byID[w.WordID] = w
	}
	for _, s := range states {
		if w, ok := byID[s.WordID]; ok {
			s.Word = w
		}
	}
	return states, nil
}

func (r *gormReviewStateRepository) CountDue(ctx context.Context, db *gorm.DB, now time.Time, sourceLang string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.ReviewState{}).
		Joins("JOIN words ON words.word_id = review_states.word_id AND words.deleted_at IS NULL").
		Where("review_states.due_at <= ?", now)
	if sourceLang != "" {
		query = query.Where("words.source_lang = ?", sourceLang)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error counting due words in DB",
			"error", result.Error,
			"source_lang", sourceLang,
		)
		return 0, fmt.Errorf("gormReviewStateRepository.CountDue: %w", result.Error)
	}
	return count, nil
}

func (r *gormReviewStateRepository) DeleteByWordID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.ReviewState{})
	if result.Error != nil {
		return fmt.Errorf("gormReviewStateRepository.DeleteByWordID: %w", result.Error)
	}
	return nil
}

func (r *gormReviewStateRepository) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	result := tx.WithContext(ctx).Where("1 = 1").Delete(&model.ReviewState{})
	if result.Error != nil {
		return fmt.Errorf("gormReviewStateRepository.DeleteAll: %w", result.Error)
	}
	return nil
}

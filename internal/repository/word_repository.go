//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordRepository は語彙エントリの永続化を担います。
// トランザクションはService層が管理し、tx/dbを引数で受け取ります。
type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Word, error)
	FindByLanguagePair(ctx context.Context, db *gorm.DB, sourceLang, targetLang string) ([]*model.Word, error)
	FindByDomain(ctx context.Context, db *gorm.DB, domain string) ([]*model.Word, error)
	Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
	DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error)
	CheckDuplicate(ctx context.Context, db *gorm.DB, text, sourceLang, targetLang string, excludeWordID *uuid.UUID) (bool, error)
	CountAll(ctx context.Context, db *gorm.DB) (int64, error)
	CountUniqueTexts(ctx context.Context, db *gorm.DB) (int64, error)
	DistinctSourceLangs(ctx context.Context, db *gorm.DB) ([]string, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"text", word.Text,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Preload("ReviewState").Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Word, error) {
	return r.findWords(ctx, db, nil)
}

func (r *gormWordRepository) FindByLanguagePair(ctx context.Context, db *gorm.DB, sourceLang, targetLang string) ([]*model.Word, error) {
	return r.findWords(ctx, db, func(q *gorm.DB) *gorm.DB {
		return q.Where("source_lang = ? AND target_lang = ?", sourceLang, targetLang)
	})
}

func (r *gormWordRepository) FindByDomain(ctx context.Context, db *gorm.DB, domain string) ([]*model.Word, error) {
	return r.findWords(ctx, db, func(q *gorm.DB) *gorm.DB {
		return q.Where("domain = ?", domain)
	})
}

// findWords は全件取得と絞り込みの共通部です。
// 並びは挿入順 (created_at、同時刻はword_idで決定的に)。
func (r *gormWordRepository) findWords(ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	query := db.WithContext(ctx).Preload("ReviewState")
	if scope != nil {
		query = scope(query)
	}
	result := query.Order("created_at ASC, word_id ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.findWords: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).Where("word_id = ?", wordID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("1 = 1").Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting all words in DB", "error", result.Error)
		return 0, fmt.Errorf("gormWordRepository.DeleteAll: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormWordRepository) CheckDuplicate(ctx context.Context, db *gorm.DB, text, sourceLang, targetLang string, excludeWordID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Word{}).
		Where("LOWER(TRIM(text)) = LOWER(TRIM(?)) AND source_lang = ? AND target_lang = ?", text, sourceLang, targetLang)
	if excludeWordID != nil {
		query = query.Where("word_id != ?", *excludeWordID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking word duplication in DB",
			"error", result.Error,
			"text", text,
		)
		return false, fmt.Errorf("gormWordRepository.CheckDuplicate: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormWordRepository) CountAll(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting words in DB", "error", result.Error)
		return 0, fmt.Errorf("gormWordRepository.CountAll: %w", result.Error)
	}
	return count, nil
}

// CountUniqueTexts は原文を正規化 (小文字化・前後空白除去) した上での異なり語数を返します
func (r *gormWordRepository) CountUniqueTexts(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).
		Select("COUNT(DISTINCT LOWER(TRIM(text)))").
		Scan(&count)
	if result.Error != nil {
		logger.Error("Error counting unique texts in DB", "error", result.Error)
		return 0, fmt.Errorf("gormWordRepository.CountUniqueTexts: %w", result.Error)
	}
	return count, nil
}

func (r *gormWordRepository) DistinctSourceLangs(ctx context.Context, db *gorm.DB) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var langs []string
	result := db.WithContext(ctx).Model(&model.Word{}).
		Distinct("source_lang").
		Order("source_lang ASC").
		Pluck("source_lang", &langs)
	if result.Error != nil {
		logger.Error("Error listing source languages in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.DistinctSourceLangs: %w", result.Error)
	}
	return langs, nil
}

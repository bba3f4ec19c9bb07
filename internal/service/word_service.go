// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordService は語彙ストアの操作面です
type WordService interface {
	PostWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error)
	GetWords(ctx context.Context) ([]*model.Word, error)
	GetWordsByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*model.Word, error)
	GetWordsByDomain(ctx context.Context, domain string) ([]*model.Word, error)
	PatchWord(ctx context.Context, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
	DeleteAllWords(ctx context.Context) (int64, error)
	GetStats(ctx context.Context) (*model.StatsResponse, error)
	GetAvailableLanguages(ctx context.Context) ([]string, error)
}

type wordService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo repository.WordRepository
	statRepo repository.ReviewStateRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, statRepo repository.ReviewStateRepository) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		statRepo: statRepo,
	}
}

// PostWord は単語と初期学習状態を同一トランザクションで作成します
func (s *wordService) PostWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	if strings.TrimSpace(req.Text) == "" || strings.TrimSpace(req.Translation) == "" ||
		req.SourceLang == "" || req.TargetLang == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "原文・訳文・言語コードは必須です。", "", model.ErrInvalidInput)
	}

	var createdWord *model.Word

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 重複チェック (同じ原文・言語ペア)
		exists, err := s.wordRepo.CheckDuplicate(ctx, tx, req.Text, req.SourceLang, req.TargetLang, nil)
		if err != nil {
			logger.Error("Error checking word duplication in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "語彙の保存に失敗しました。", "", model.ErrStorage)
		}
		if exists {
			return model.NewAppError("DUPLICATE_WORD", "同じ原文がすでに登録されています。", "text", model.ErrConflict)
		}

		// 2. 単語を作成
		word := &model.Word{
			WordID:             uuid.New(),
			Text:               req.Text,
			Translation:        req.Translation,
			SourceLang:         req.SourceLang,
			TargetLang:         req.TargetLang,
			Context:            req.Context,
			ContextTranslation: req.ContextTranslation,
			Domain:             req.Domain,
		}
		if err := s.wordRepo.Create(ctx, tx, word); err != nil {
			logger.Error("Error creating word in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "語彙の保存に失敗しました。", "", model.ErrStorage)
		}

		// 3. 初期学習状態を作成 (箱0、即時復習対象)
		state := &model.ReviewState{
			StateID:  uuid.New(),
			WordID:   word.WordID,
			BoxIndex: 0,
		}
		if err := s.statRepo.Create(ctx, tx, state); err != nil {
			logger.Error("Error creating review state in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "学習状態の作成に失敗しました。", "", model.ErrStorage)
		}

		word.ReviewState = state
		createdWord = word
		return nil // コミット
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Word created", "word_id", createdWord.WordID.String())
	return createdWord, nil
}

func (s *wordService) GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("STORAGE_ERROR", "語彙の取得に失敗しました。", "", model.ErrStorage)
	}
	return word, nil
}

func (s *wordService) GetWords(ctx context.Context) ([]*model.Word, error) {
	words, err := s.wordRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("STORAGE_ERROR", "語彙一覧の取得に失敗しました。", "", model.ErrStorage)
	}
	return words, nil
}

func (s *wordService) GetWordsByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*model.Word, error) {
	words, err := s.wordRepo.FindByLanguagePair(ctx, s.db, sourceLang, targetLang)
	if err != nil {
		return nil, model.NewAppError("STORAGE_ERROR", "語彙一覧の取得に失敗しました。", "", model.ErrStorage)
	}
	return words, nil
}

func (s *wordService) GetWordsByDomain(ctx context.Context, domain string) ([]*model.Word, error) {
	words, err := s.wordRepo.FindByDomain(ctx, s.db, domain)
	if err != nil {
		return nil, model.NewAppError("STORAGE_ERROR", "語彙一覧の取得に失敗しました。", "", model.ErrStorage)
	}
	return words, nil
}

// PatchWord は指定フィールドのみを更新します
func (s *wordService) PatchWord(ctx context.Context, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	updates := make(map[string]interface{})
	if req.Text != nil {
		if strings.TrimSpace(*req.Text) == "" {
			return nil, model.NewAppError("VALIDATION_ERROR", "原文を空にはできません。", "text", model.ErrInvalidInput)
		}
		updates["text"] = *req.Text
	}
	if req.Translation != nil {
		if strings.TrimSpace(*req.Translation) == "" {
			return nil, model.NewAppError("VALIDATION_ERROR", "訳文を空にはできません。", "translation", model.ErrInvalidInput)
		}
		updates["translation"] = *req.Translation
	}
	if req.Context != nil {
		updates["context"] = *req.Context
	}
	if req.ContextTranslation != nil {
		updates["context_translation"] = *req.ContextTranslation
	}
	if req.Domain != nil {
		updates["domain"] = *req.Domain
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.wordRepo.Update(ctx, tx, wordID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "更新対象の単語が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error updating word in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "語彙の更新に失敗しました。", "", model.ErrStorage)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetWord(ctx, wordID)
}

// DeleteWord は冪等です。存在しないIDの削除は成功扱いにします。
func (s *wordService) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.wordRepo.Delete(ctx, tx, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Info("Delete requested for absent word, treating as success", "word_id", wordID.String())
				return nil
			}
			logger.Error("Error deleting word in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "語彙の削除に失敗しました。", "", model.ErrStorage)
		}
		// 学習状態も同一トランザクションで削除し、孤児を残さない
		if err := s.statRepo.DeleteByWordID(ctx, tx, wordID); err != nil {
			logger.Error("Error deleting review state in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "学習状態の削除に失敗しました。", "", model.ErrStorage)
		}
		return nil
	})
}

func (s *wordService) DeleteAllWords(ctx context.Context) (int64, error) {
	logger := middleware.GetLogger(ctx)

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.wordRepo.DeleteAll(ctx, tx)
		if err != nil {
			logger.Error("Error deleting all words in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "語彙の全削除に失敗しました。", "", model.ErrStorage)
		}
		if err := s.statRepo.DeleteAll(ctx, tx); err != nil {
			logger.Error("Error deleting all review states in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "学習状態の全削除に失敗しました。", "", model.ErrStorage)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("All words deleted", "count", deleted)
	return deleted, nil
}

// GetStats は総語数と正規化した原文の異なり語数を返します
func (s *wordService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	total, err := s.wordRepo.CountAll(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("STORAGE_ERROR", "統計の取得に失敗しました。", "", model.ErrStorage)
	}
	unique, err := s.wordRepo.CountUniqueTexts(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("STORAGE_ERROR", "統計の取得に失敗しました。", "", model.ErrStorage)
	}
	return &model.StatsResponse{TotalEntries: total, UniqueWords: unique}, nil
}

func (s *wordService) GetAvailableLanguages(ctx context.Context) ([]string, error) {
	langs, err := s.wordRepo.DistinctSourceLangs(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("STORAGE_ERROR", "言語一覧の取得に失敗しました。", "", model.ErrStorage)
	}
	return langs, nil
}

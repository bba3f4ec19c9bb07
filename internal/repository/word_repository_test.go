// internal/repository/word_repository_test.go
package repository_test

import (
	"context"
	"testing"
	"time"

	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for repository testing")
	require.NoError(t, db.AutoMigrate(&model.Word{}, &model.ReviewState{}))
	// cache=shared のため前のテストのデータが残っている可能性がある
	require.NoError(t, db.Exec("DELETE FROM review_states").Error)
	require.NoError(t, db.Exec("DELETE FROM words").Error)
	return db
}

func seedWord(t *testing.T, db *gorm.DB, text, sourceLang, targetLang, domain string, createdAt time.Time) *model.Word {
	t.Helper()
	word := &model.Word{
		WordID:      uuid.New(),
		Text:        text,
		Translation: text + "-tr",
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
		Domain:      domain,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(word).Error)
	return word
}

func TestGormWordRepository_CheckDuplicate(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := repository.NewGormWordRepository()

	existing := seedWord(t, db, "Serendipity", "en", "ja", "", time.Now())

	tests := []struct {
		name       string
		text       string
		sourceLang string
		targetLang string
		exclude    *uuid.UUID
		want       bool
	}{
		{
			name:       "正常系: 完全一致は重複",
			text:       "Serendipity",
			sourceLang: "en",
			targetLang: "ja",
			want:       true,
		},
		{
			name:       "正常系: 大文字小文字と前後空白は無視して重複",
			text:       "  serendipity ",
			sourceLang: "en",
			targetLang: "ja",
			want:       true,
		},
		{
			name:       "正常系: 言語ペアが違えば重複ではない",
			text:       "Serendipity",
			sourceLang: "en",
			targetLang: "de",
			want:       false,
		},
		{
			name:       "正常系: 原文が違えば重複ではない",
			text:       "Ephemeral",
			sourceLang: "en",
			targetLang: "ja",
			want:       false,
		},
		{
			name:       "正常系: 自分自身を除外すれば重複ではない (更新時)",
			text:       "Serendipity",
			sourceLang: "en",
			targetLang: "ja",
			exclude:    &existing.WordID,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.CheckDuplicate(ctx, db, tt.text, tt.sourceLang, tt.targetLang, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGormWordRepository_FindWordsOrdering(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := repository.NewGormWordRepository()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seedWord(t, db, "third", "en", "ja", "", base.Add(2*time.Hour))
	seedWord(t, db, "first", "en", "ja", "news.example.com", base)
	seedWord(t, db, "second", "de", "ja", "", base.Add(time.Hour))

	t.Run("正常系: 全件を登録順で返す", func(t *testing.T) {
		words, err := repo.FindAll(ctx, db)
		require.NoError(t, err)
		require.Len(t, words, 3)
		assert.Equal(t, "first", words[0].Text)
		assert.Equal(t, "second", words[1].Text)
		assert.Equal(t, "third", words[2].Text)
	})

	t.Run("正常系: 言語ペアで絞り込み", func(t *testing.T) {
		words, err := repo.FindByLanguagePair(ctx, db, "en", "ja")
		require.NoError(t, err)
		require.Len(t, words, 2)
		assert.Equal(t, "first", words[0].Text)
		assert.Equal(t, "third", words[1].Text)
	})

	t.Run("正常系: ドメインで絞り込み", func(t *testing.T) {
		words, err := repo.FindByDomain(ctx, db, "news.example.com")
		require.NoError(t, err)
		require.Len(t, words, 1)
		assert.Equal(t, "first", words[0].Text)
	})
}

func TestGormWordRepository_CountsAndLanguages(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := repository.NewGormWordRepository()

	now := time.Now()
	seedWord(t, db, "Apple", "en", "ja", "", now)
	seedWord(t, db, " apple ", "en", "de", "", now) // 正規化すると同じ原文
	seedWord(t, db, "Haus", "de", "ja", "", now)

	t.Run("正常系: 総語数は正規化せず数える", func(t *testing.T) {
		count, err := repo.CountAll(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("正常系: 異なり語数は正規化して数える", func(t *testing.T) {
		count, err := repo.CountUniqueTexts(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("正常系: 原文言語の一覧を昇順で返す", func(t *testing.T) {
		langs, err := repo.DistinctSourceLangs(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "en"}, langs)
	})
}

func TestGormWordRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := repository.NewGormWordRepository()

	word := seedWord(t, db, "original", "en", "ja", "", time.Now())

	t.Run("正常系: 部分更新", func(t *testing.T) {
		err := repo.Update(ctx, db, word.WordID, map[string]interface{}{"text": "updated"})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, db, word.WordID)
		require.NoError(t, err)
		assert.Equal(t, "updated", got.Text)
	})

	t.Run("異常系: 存在しないIDの更新はErrNotFound", func(t *testing.T) {
		err := repo.Update(ctx, db, uuid.New(), map[string]interface{}{"text": "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 削除後は取得できない (論理削除)", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, db, word.WordID))

		_, err := repo.FindByID(ctx, db, word.WordID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		// 物理行は残っている
		var raw int64
		require.NoError(t, db.Unscoped().Model(&model.Word{}).Where("word_id = ?", word.WordID).Count(&raw).Error)
		assert.Equal(t, int64(1), raw)
	})

	t.Run("異常系: 存在しないIDの削除はErrNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormReviewStateRepository_Candidates(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	wordRepo := repository.NewGormWordRepository()
	statRepo := repository.NewGormReviewStateRepository()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	wordEN := seedWord(t, db, "due_en", "en", "ja", "", now.Add(-48*time.Hour))
	wordDE := seedWord(t, db, "due_de", "de", "ja", "", now.Add(-48*time.Hour))
	wordDeleted := seedWord(t, db, "deleted", "en", "ja", "", now.Add(-48*time.Hour))

	require.NoError(t, statRepo.Create(ctx, db, &model.ReviewState{
		StateID: uuid.New(), WordID: wordEN.WordID, BoxIndex: 1, DueAt: now.Add(-time.Hour),
	}))
	require.NoError(t, statRepo.Create(ctx, db, &model.ReviewState{
		StateID: uuid.New(), WordID: wordDE.WordID, BoxIndex: 2, DueAt: now.Add(24 * time.Hour),
	}))
	require.NoError(t, statRepo.Create(ctx, db, &model.ReviewState{
		StateID: uuid.New(), WordID: wordDeleted.WordID, BoxIndex: 0, DueAt: now.Add(-time.Hour),
	}))

	// 論理削除した単語は候補から外れる
	require.NoError(t, wordRepo.Delete(ctx, db, wordDeleted.WordID))

	t.Run("正常系: 削除されていない単語の状態だけを返し、Wordを紐付ける", func(t *testing.T) {
		states, err := statRepo.FindCandidates(ctx, db, "")
		require.NoError(t, err)
		require.Len(t, states, 2)
		for _, s := range states {
			require.NotNil(t, s.Word)
			assert.NotEqual(t, "deleted", s.Word.Text)
		}
	})

	t.Run("正常系: 原文言語で絞り込み", func(t *testing.T) {
		states, err := statRepo.FindCandidates(ctx, db, "de")
		require.NoError(t, err)
		require.Len(t, states, 1)
		assert.Equal(t, "due_de", states[0].Word.Text)
	})

	t.Run("正常系: 復習対象数は期限切れのみ数える", func(t *testing.T) {
		count, err := statRepo.CountDue(ctx, db, now, "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count) // due_enのみ。削除済みは除外。
	})

	t.Run("正常系: 言語フィルタ付きの復習対象数", func(t *testing.T) {
		count, err := statRepo.CountDue(ctx, db, now, "de")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

// internal/service/review_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vocab_trainer/internal/clock"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository/mocks"
	"vocab_trainer/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDBReview(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	require.NoError(t, err, "failed to connect database for review service testing")
	// トランザクション内の読み取りのためにマイグレーションが必要
	require.NoError(t, db.AutoMigrate(&model.Word{}, &model.ReviewState{}))
	return db
}

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// --- Test SubmitResult ---
func Test_reviewService_SubmitResult(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	mockStatRepo := new(mocks.ReviewStateRepository)
	reviewService := NewReviewService(db, mockStatRepo, clock.Fixed{T: fixedNow})

	wordID := uuid.New()
	stateID := uuid.New()
	lastReviewed := fixedNow.Add(-72 * time.Hour)

	baseState := func() *model.ReviewState {
		return &model.ReviewState{
			StateID:        stateID,
			WordID:         wordID,
			BoxIndex:       2,
			TotalCorrect:   5,
			TotalWrong:     2,
			Streak:         1,
			IntervalDays:   3,
			LastReviewedAt: &lastReviewed,
			DueAt:          fixedNow.Add(-time.Hour),
		}
	}

	tests := []struct {
		name      string
		res       srs.Result
		setupMock func(m *mocks.ReviewStateRepository)
		wantErr   error
		check     func(t *testing.T, state *model.ReviewState)
	}{
		{
			name: "正常系: 正解で箱2から箱3へ",
			res:  srs.Result{Correct: true},
			setupMock: func(m *mocks.ReviewStateRepository) {
				m.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), wordID).
					Return(baseState(), nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(s *model.ReviewState) bool {
					return s.BoxIndex == 3 && s.TotalCorrect == 6 && s.Streak == 2
				})).Return(nil).Once()
			},
			check: func(t *testing.T, state *model.ReviewState) {
				assert.Equal(t, 3, state.BoxIndex)
				assert.Equal(t, 7, state.IntervalDays)
				assert.Equal(t, fixedNow.AddDate(0, 0, 7), state.DueAt)
				require.NotNil(t, state.LastReviewedAt)
				assert.Equal(t, fixedNow, *state.LastReviewedAt)
			},
		},
		{
			name: "正常系: ヒント使用の正解は不正解扱いで箱2から箱1へ",
			res:  srs.Result{Correct: true, UsedHint: true},
			setupMock: func(m *mocks.ReviewStateRepository) {
				m.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), wordID).
					Return(baseState(), nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(s *model.ReviewState) bool {
					return s.BoxIndex == 1 && s.TotalWrong == 3 && s.Streak == 0
				})).Return(nil).Once()
			},
			check: func(t *testing.T, state *model.ReviewState) {
				assert.Equal(t, 1, state.BoxIndex)
				assert.Equal(t, 1, state.IntervalDays)
			},
		},
		{
			name: "正常系: スキップは状態を一切変更せずUpdateも呼ばない",
			res:  srs.Result{Skipped: true, Correct: true},
			setupMock: func(m *mocks.ReviewStateRepository) {
				m.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), wordID).
					Return(baseState(), nil).Once()
				// Update は呼ばれない
			},
			check: func(t *testing.T, state *model.ReviewState) {
				assert.Equal(t, *baseState(), *state)
			},
		},
		{
			name: "異常系: 学習状態が見つからない",
			res:  srs.Result{Correct: true},
			setupMock: func(m *mocks.ReviewStateRepository) {
				m.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), wordID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: FindByWordIDでDBエラー",
			res:  srs.Result{Correct: true},
			setupMock: func(m *mocks.ReviewStateRepository) {
				m.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), wordID).
					Return(nil, errors.New("db error finding state")).Once()
			},
			wantErr: model.ErrStorage,
		},
		{
			name: "異常系: UpdateでDBエラー",
			res:  srs.Result{Correct: true},
			setupMock: func(m *mocks.ReviewStateRepository) {
				m.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), wordID).
					Return(baseState(), nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReviewState")).
					Return(errors.New("db error on update state")).Once()
			},
			wantErr: model.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStatRepo.Mock = mock.Mock{} // モックをリセット
			tt.setupMock(mockStatRepo)

			state, err := reviewService.SubmitResult(ctx, wordID, tt.res)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, state)
			} else {
				require.NoError(t, err)
				require.NotNil(t, state)
				if tt.check != nil {
					tt.check(t, state)
				}
			}
			mockStatRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetDueCount ---
func Test_reviewService_GetDueCount(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	mockStatRepo := new(mocks.ReviewStateRepository)
	reviewService := NewReviewService(db, mockStatRepo, clock.Fixed{T: fixedNow})

	tests := []struct {
		name      string
		language  string
		setupMock func(m *mocks.ReviewStateRepository)
		wantCount int64
		wantErr   error
	}{
		{
			name:     "正常系: 言語フィルタなしで復習対象数を取得",
			language: "",
			setupMock: func(m *mocks.ReviewStateRepository) {
				m.On("CountDue", ctx, db, fixedNow, "").Return(int64(7), nil).Once()
			},
			wantCount: 7,
		},
		{
			name:     "正常系: 言語フィルタありで0件",
			language: "fr",
			setupMock: func(m *mocks.ReviewStateRepository) {
				m.On("CountDue", ctx, db, fixedNow, "fr").Return(int64(0), nil).Once()
			},
			wantCount: 0,
		},
		{
			name:     "異常系: リポジトリでDBエラー",
			language: "en",
			setupMock: func(m *mocks.ReviewStateRepository) {
				m.On("CountDue", ctx, db, fixedNow, "en").
					Return(int64(0), errors.New("db error counting due")).Once()
			},
			wantErr: model.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStatRepo.Mock = mock.Mock{}
			tt.setupMock(mockStatRepo)

			count, err := reviewService.GetDueCount(ctx, tt.language)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCount, count)
			}
			mockStatRepo.AssertExpectations(t)
		})
	}
}

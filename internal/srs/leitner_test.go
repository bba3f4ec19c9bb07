// internal/srs/leitner_test.go
package srs

import (
	"testing"
	"time"

	"vocab_trainer/internal/model"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestApply(t *testing.T) {
	lastReviewed := testNow.Add(-48 * time.Hour)

	tests := []struct {
		name             string
		state            model.ReviewState
		res              Result
		wantBox          int
		wantTotalCorrect int
		wantTotalWrong   int
		wantStreak       int
		wantIntervalDays int
	}{
		{
			name:             "正常系: 正解で箱2から箱3へ昇格",
			state:            model.ReviewState{BoxIndex: 2, TotalCorrect: 5, TotalWrong: 2, Streak: 1},
			res:              Result{Correct: true},
			wantBox:          3,
			wantTotalCorrect: 6,
			wantTotalWrong:   2,
			wantStreak:       2,
			wantIntervalDays: 7,
		},
		{
			name:             "正常系: 不正解で箱2から箱1へ降格、連続正解リセット",
			state:            model.ReviewState{BoxIndex: 2, TotalCorrect: 5, TotalWrong: 2, Streak: 3},
			res:              Result{Correct: false},
			wantBox:          1,
			wantTotalCorrect: 5,
			wantTotalWrong:   3,
			wantStreak:       0,
			wantIntervalDays: 1,
		},
		{
			name:             "正常系: 最上位の箱は正解でもそれ以上昇格しない",
			state:            model.ReviewState{BoxIndex: MaxBox, TotalCorrect: 10, Streak: 4},
			res:              Result{Correct: true},
			wantBox:          MaxBox,
			wantTotalCorrect: 11,
			wantTotalWrong:   0,
			wantStreak:       5,
			wantIntervalDays: 14,
		},
		{
			name:             "正常系: 箱0は不正解でもそれ以下に降格しない",
			state:            model.ReviewState{BoxIndex: 0, TotalWrong: 1},
			res:              Result{Correct: false},
			wantBox:          0,
			wantTotalCorrect: 0,
			wantTotalWrong:   2,
			wantStreak:       0,
			wantIntervalDays: 0,
		},
		{
			name:             "正常系: ヒント使用時は正解でも不正解扱い",
			state:            model.ReviewState{BoxIndex: 2, TotalCorrect: 5, TotalWrong: 2, Streak: 3},
			res:              Result{Correct: true, UsedHint: true},
			wantBox:          1,
			wantTotalCorrect: 5,
			wantTotalWrong:   3,
			wantStreak:       0,
			wantIntervalDays: 1,
		},
		{
			name:             "正常系: ヒント使用かつ不正解も不正解扱い",
			state:            model.ReviewState{BoxIndex: 3, TotalCorrect: 8, TotalWrong: 1, Streak: 2},
			res:              Result{Correct: false, UsedHint: true},
			wantBox:          2,
			wantTotalCorrect: 8,
			wantTotalWrong:   2,
			wantStreak:       0,
			wantIntervalDays: 3,
		},
		{
			name:             "正常系: 箱0の初回正解で箱1へ",
			state:            model.ReviewState{BoxIndex: 0},
			res:              Result{Correct: true},
			wantBox:          1,
			wantTotalCorrect: 1,
			wantTotalWrong:   0,
			wantStreak:       1,
			wantIntervalDays: 1,
		},
		{
			name:             "異常系: 範囲外の箱番号 (負値) は0に矯正してから適用",
			state:            model.ReviewState{BoxIndex: -3},
			res:              Result{Correct: true},
			wantBox:          1,
			wantTotalCorrect: 1,
			wantTotalWrong:   0,
			wantStreak:       1,
			wantIntervalDays: 1,
		},
		{
			name:             "異常系: 範囲外の箱番号 (上限超過) はMaxBoxに矯正してから適用",
			state:            model.ReviewState{BoxIndex: 99},
			res:              Result{Correct: false},
			wantBox:          MaxBox - 1,
			wantTotalCorrect: 0,
			wantTotalWrong:   1,
			wantStreak:       0,
			wantIntervalDays: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.state.LastReviewedAt = &lastReviewed
			next := Apply(tt.state, tt.res, testNow)

			assert.Equal(t, tt.wantBox, next.BoxIndex)
			assert.Equal(t, tt.wantTotalCorrect, next.TotalCorrect)
			assert.Equal(t, tt.wantTotalWrong, next.TotalWrong)
			assert.Equal(t, tt.wantStreak, next.Streak)
			assert.Equal(t, tt.wantIntervalDays, next.IntervalDays)

			// 記録時刻と次回期限
			if assert.NotNil(t, next.LastReviewedAt) {
				assert.Equal(t, testNow, *next.LastReviewedAt)
			}
			assert.Equal(t, testNow.AddDate(0, 0, tt.wantIntervalDays), next.DueAt)
		})
	}
}

func TestApply_Skipped(t *testing.T) {
	lastReviewed := testNow.Add(-24 * time.Hour)
	state := model.ReviewState{
		BoxIndex:       2,
		TotalCorrect:   5,
		TotalWrong:     2,
		Streak:         3,
		IntervalDays:   3,
		LastReviewedAt: &lastReviewed,
		DueAt:          testNow.Add(-time.Hour),
	}

	// スキップは正誤・ヒントの値にかかわらず完全な無操作
	for _, res := range []Result{
		{Skipped: true},
		{Skipped: true, Correct: true},
		{Skipped: true, Correct: true, UsedHint: true},
	} {
		next := Apply(state, res, testNow)
		assert.Equal(t, state, next)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	state := model.ReviewState{BoxIndex: 2, Streak: 3}
	orig := state

	_ = Apply(state, Result{Correct: true}, testNow)

	assert.Equal(t, orig, state)
}

func TestIsDue(t *testing.T) {
	tests := []struct {
		name  string
		dueAt time.Time
		want  bool
	}{
		{
			name:  "正常系: DueAtゼロ値 (未復習) は常に対象",
			dueAt: time.Time{},
			want:  true,
		},
		{
			name:  "正常系: DueAtが過去なら対象",
			dueAt: testNow.Add(-time.Minute),
			want:  true,
		},
		{
			name:  "正常系: DueAtが現在時刻ちょうどなら対象",
			dueAt: testNow,
			want:  true,
		},
		{
			name:  "正常系: DueAtが未来なら対象外",
			dueAt: testNow.Add(time.Minute),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDue(model.ReviewState{DueAt: tt.dueAt}, testNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntervalTable(t *testing.T) {
	// 箱番号と復習間隔の対応は学習体験そのものなので固定で検証する
	assert.Equal(t, [MaxBox + 1]int{0, 1, 3, 7, 14}, IntervalTable)
}

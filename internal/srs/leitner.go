// internal/srs/leitner.go
//
// Leitner方式の箱移動を純粋関数として実装します。I/Oは行いません。
package srs

import (
	"time"

	"vocab_trainer/internal/model"
)

// MaxBox は最上位の箱番号です (箱は0..MaxBoxの5段階)
const MaxBox = 4

// IntervalTable は箱番号から次回復習までの日数への対応表です。
// 箱0は常に復習対象 (0日)。
var IntervalTable = [MaxBox + 1]int{0, 1, 3, 7, 14}

// Result は1回の復習の結果です。UsedHintはCorrectとは独立したフラグで、
// ヒントを使った正解は箱の昇格に数えません。
type Result struct {
	Correct  bool
	UsedHint bool
	Skipped  bool
}

// Apply は現在の学習状態に復習結果を適用し、次の状態を返します。
// 引数は変更せず、新しい値を返します。
func Apply(state model.ReviewState, res Result, now time.Time) model.ReviewState {
	// スキップは一切の記録を残さない (期限・カウンタとも現状維持)
	if res.Skipped {
		return state
	}

	next := state
	next.BoxIndex = clampBox(state.BoxIndex)

	// ヒント使用時は正解でも不正解として扱う
	effectiveCorrect := res.Correct && !res.UsedHint

	if effectiveCorrect {
		if next.BoxIndex < MaxBox {
			next.BoxIndex++
		}
		next.TotalCorrect++
		next.Streak++
	} else {
		if next.BoxIndex > 0 {
			next.BoxIndex--
		}
		next.TotalWrong++
		next.Streak = 0
	}

	next.IntervalDays = IntervalTable[next.BoxIndex]
	reviewedAt := now
	next.LastReviewedAt = &reviewedAt
	next.DueAt = now.AddDate(0, 0, next.IntervalDays)

	return next
}

// IsDue は状態が復習対象かを返します。未復習 (DueAtゼロ値) は常に対象です。
func IsDue(state model.ReviewState, now time.Time) bool {
	if state.DueAt.IsZero() {
		return true
	}
	return !state.DueAt.After(now)
}

// clampBox は破損した箱番号を有効範囲に収めます
func clampBox(box int) int {
	if box < 0 {
		return 0
	}
	if box > MaxBox {
		return MaxBox
	}
	return box
}

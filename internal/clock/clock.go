// internal/clock/clock.go
package clock

import "time"

// Clock は現在時刻の供給源です。期限計算と通知時刻計算を
// テストで決定的にするため、time.Nowを直接呼ばず注入します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Real はシステム時刻を返すClockです
func Real() Clock {
	return realClock{}
}

// Fixed は常に同じ時刻を返すClockです (テスト用)
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

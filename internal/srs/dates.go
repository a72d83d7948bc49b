// internal/srs/dates.go
package srs

import "time"

// DateOf はタイムスタンプからカレンダー日付（その日の00:00 UTC）を切り出します。
// 期日と活動日の比較はすべてこの正規化を通した日付で行う。
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate は2つの時刻が同じカレンダー日付かどうかを返します
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// IsYesterdayOf は a が b の前日かどうかを返します
func IsYesterdayOf(a, b time.Time) bool {
	return DateOf(a).AddDate(0, 0, 1).Equal(DateOf(b))
}

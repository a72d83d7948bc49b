// internal/srs/streak.go
package srs

import "time"

// StreakState はユーザーの連続学習日数の状態です
type StreakState struct {
	Current      int
	Longest      int
	LastActivity *time.Time // nilは「まだ一度も学習していない」
}

// AdvanceStreak はセッション完了を1回分だけストリークに反映します。
// 遷移は1ユーザー1日あたり高々1回:
//   - 初回学習        → ストリーク1
//   - 最終活動が今日   → 何もしない（同日リプレイに対して冪等）
//   - 最終活動が昨日   → ストリーク+1
//   - それ以外（2日以上空いた） → ストリーク1にリセット
//
// 回答ごとではなくセッション完了時にだけ呼ぶこと。回答ごとに呼ぶと
// 同日の活動を二重に数えてしまう。
func AdvanceStreak(state StreakState, now time.Time) StreakState {
	today := DateOf(now)

	switch {
	case state.LastActivity == nil:
		state.Current = 1
	case SameDate(*state.LastActivity, today):
		// 今日の分は計上済み
		return state
	case IsYesterdayOf(*state.LastActivity, today):
		state.Current++
	default:
		state.Current = 1
	}

	if state.Current > state.Longest {
		state.Longest = state.Current
	}
	state.LastActivity = &today
	return state
}

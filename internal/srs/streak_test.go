// internal/srs/streak_test.go
package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	today := DateOf(now)
	yesterday := today.AddDate(0, 0, -1)
	fiveDaysAgo := today.AddDate(0, 0, -5)

	tests := []struct {
		name         string
		state        StreakState
		wantCurrent  int
		wantLongest  int
		wantActivity time.Time
	}{
		{
			name:         "初回学習 → ストリーク1",
			state:        StreakState{Current: 0, Longest: 0, LastActivity: nil},
			wantCurrent:  1,
			wantLongest:  1,
			wantActivity: today,
		},
		{
			name:         "昨日学習済み → ストリーク+1",
			state:        StreakState{Current: 3, Longest: 5, LastActivity: &yesterday},
			wantCurrent:  4,
			wantLongest:  5,
			wantActivity: today,
		},
		{
			name:         "昨日学習済みで最長更新",
			state:        StreakState{Current: 5, Longest: 5, LastActivity: &yesterday},
			wantCurrent:  6,
			wantLongest:  6,
			wantActivity: today,
		},
		{
			name:         "今日すでに学習済み → 変化なし",
			state:        StreakState{Current: 4, Longest: 7, LastActivity: &today},
			wantCurrent:  4,
			wantLongest:  7,
			wantActivity: today,
		},
		{
			name:         "5日空いた → 1にリセット",
			state:        StreakState{Current: 9, Longest: 9, LastActivity: &fiveDaysAgo},
			wantCurrent:  1,
			wantLongest:  9,
			wantActivity: today,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvanceStreak(tt.state, now)
			assert.Equal(t, tt.wantCurrent, got.Current)
			assert.Equal(t, tt.wantLongest, got.Longest)
			if assert.NotNil(t, got.LastActivity) {
				assert.True(t, got.LastActivity.Equal(tt.wantActivity))
			}
		})
	}
}

// 同日中に何度呼んでもストリークが動くのは最初の1回だけ
func TestAdvanceStreak_IdempotentSameDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	yesterday := DateOf(now).AddDate(0, 0, -1)

	state := StreakState{Current: 2, Longest: 2, LastActivity: &yesterday}

	first := AdvanceStreak(state, now)
	assert.Equal(t, 3, first.Current)

	// 同じ日の夜にもう一度セッションを完了しても変わらない
	later := now.Add(10 * time.Hour)
	second := AdvanceStreak(first, later)
	assert.Equal(t, first.Current, second.Current)
	assert.Equal(t, first.Longest, second.Longest)
	assert.True(t, second.LastActivity.Equal(*first.LastActivity))
}

// どんな遷移列の後でも longest >= current が保たれる
func TestAdvanceStreak_LongestInvariant(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	state := StreakState{}

	// 連続3日 → 4日空ける → 連続2日 → 同日2回、のような不規則な列
	offsets := []int{0, 1, 2, 6, 7, 7, 8, 20, 21, 22, 23}
	for _, days := range offsets {
		state = AdvanceStreak(state, start.AddDate(0, 0, days))
		assert.GreaterOrEqual(t, state.Longest, state.Current)
	}

	// 最後の4連続日 (20,21,22,23) が反映されている
	assert.Equal(t, 4, state.Current)
	assert.Equal(t, 4, state.Longest)
}

// internal/srs/scheduler.go

// Package srs は間隔反復スケジューリングとストリーク集計の純粋ロジックを提供します。
// ストレージやHTTPには依存しない。呼び出し側が現在時刻を渡すこと。
package srs

import (
	"math"
	"time"
)

// Review は1回の回答を適用した後の復習状態です
type Review struct {
	Level       int       // 連続正解数（不正解でリセット）
	NextDueDate time.Time // 次回出題日（カレンダー日付）
	ReviewedAt  time.Time // 今回の回答時刻
}

// NextReview は現在のレベルと正誤から次の復習状態を計算します。
// 不正解なら必ずレベル0に戻り、当日中に再出題する（猶予なし）。
// 正解時の間隔はレベル1→1日、レベル2→6日、以降は round(旧レベル×2.5) 日。
// 丸めで間隔が縮まないよう、旧レベル+1 日を下限とする。
// 全域関数であり、エラーは返さない。
func NextReview(currentLevel int, isCorrect bool, now time.Time) Review {
	if !isCorrect {
		return Review{
			Level:       0,
			NextDueDate: DateOf(now),
			ReviewedAt:  now,
		}
	}

	newLevel := currentLevel + 1

	var days int
	switch newLevel {
	case 1:
		days = 1
	case 2:
		days = 6
	default:
		days = int(math.Round(float64(currentLevel) * 2.5))
		if floor := currentLevel + 1; days < floor {
			days = floor
		}
	}

	return Review{
		Level:       newLevel,
		NextDueDate: DateOf(now).AddDate(0, 0, days),
		ReviewedAt:  now,
	}
}

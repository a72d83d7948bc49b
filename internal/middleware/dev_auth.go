// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"linguaquest/internal/model"
	"linguaquest/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は X-User-ID ヘッダーをそのまま信用する開発・テスト用の認証です。
// 本番ルーティングには絶対に組み込まないこと。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			appErr := model.NewAppError("UNAUTHORIZED", "X-User-IDヘッダーが必要です。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			appErr := model.NewAppError("UNAUTHORIZED", "X-User-IDヘッダーの形式が正しくありません。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"log"
	"net/http"

	"curriculum_keep/internal/model"
	"curriculum_keep/internal/webutil"
)

// DevActorContextMiddleware は開発時用ミドルウェアです。
// X-Actor-* ヘッダーから実行者を組み立ててコンテキストに設定します。
// トークン検証は行いません。
func DevActorContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID := r.Header.Get("X-Actor-ID")
		if actorID == "" {
			// 開発時でも実行者IDは必須とする (監査ログのために)
			log.Println("[DEV AUTH] Failed: X-Actor-ID header missing")
			webutil.RespondWithError(w, http.StatusUnauthorized, "[DEV] Unauthorized: Missing X-Actor-ID header")
			return
		}

		actor := model.Actor{
			ID:     actorID,
			Name:   r.Header.Get("X-Actor-Name"),
			Role:   r.Header.Get("X-Actor-Role"),
			Strand: r.Header.Get("X-Actor-Strand"),
		}

		ctx := context.WithValue(r.Context(), model.ActorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

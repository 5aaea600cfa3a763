package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"curriculum_keep/internal/config"
	"curriculum_keep/internal/model"
	"curriculum_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// JWTActorMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// クレームから実行者 (Actor) を組み立ててコンテキストに積むミドルウェアです。
// ログイン・トークン発行は外部コラボレータの責務で、ここでは検証のみ行います。
func JWTActorMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			// jwt.Parse は署名と有効期限(exp)の両方を検証してくれる
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("JWT auth failed: Unknown claims type or invalid token")
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンにユーザー情報が含まれていません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// sub 以外のクレームは任意。欠けていても Actor 解決のフォールバックが埋める。
			actor := model.Actor{
				ID:     subject,
				Name:   stringClaim(claims, "name"),
				Role:   stringClaim(claims, "role"),
				Strand: stringClaim(claims, "strand"),
			}

			ctx := context.WithValue(r.Context(), model.ActorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// GetActorFromContext はコンテキストからセッション実行者を取得します。
// 未認証 (ミドルウェア未適用) の場合は nil を返し、呼び出し側のフォールバックに委ねます。
func GetActorFromContext(ctx context.Context) *model.Actor {
	if actor, ok := ctx.Value(model.ActorKey).(model.Actor); ok {
		return &actor
	}
	return nil
}

// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"curriculum_keep/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		// AppError ではない、予期せぬエラーの場合。
		// ログには詳細を出し、クライアントには汎用メッセージを返す。
		if statusCode >= 500 {
			logger.Error("Unhandled error", "error", err)
		}
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    codeForStatus(statusCode),
				Message: messageForStatus(statusCode),
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) && appErr.Unwrap() != nil {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		// バリデーションエラーは 422 で返す
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusForbidden:
		return "FORBIDDEN"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

func messageForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "リソースが見つかりません。"
	case http.StatusUnprocessableEntity:
		return "入力内容に誤りがあります。"
	case http.StatusConflict:
		return "リソースの状態が競合しています。"
	case http.StatusForbidden:
		return "権限がありません。"
	default:
		return "サーバー内部でエラーが発生しました。"
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR", "message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithError はシンプルなエラーレスポンスを返します (開発用ミドルウェア等から使用)
func RespondWithError(w http.ResponseWriter, code int, message string) {
	errResp := model.APIErrorResponse{
		Error: model.ErrorDetail{
			Message: message,
		},
	}
	RespondWithJSON(w, code, errResp, nil)
}

// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrConflict       = errors.New("resource conflict") // 状態遷移の競合・番号重複・上限超過
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
)

// ErrorDetail はクライアントに返すエラーの詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・メッセージ・対象フィールドを持つアプリケーションエラーです。
// Unwrap でセンチネルエラー (ErrNotFound 等) に解決できるため、
// errors.Is によるHTTPステータスへのマッピングがそのまま機能します。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// internal/webutil/response_test.go
package webutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"curriculum_keep/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "NotFoundは404", err: model.ErrNotFound, want: http.StatusNotFound},
		{name: "バリデーションエラーは422", err: model.ErrInvalidInput, want: http.StatusUnprocessableEntity},
		{name: "競合は409", err: model.ErrConflict, want: http.StatusConflict},
		{name: "権限エラーは403", err: model.ErrForbidden, want: http.StatusForbidden},
		{name: "未知のエラーは500", err: errors.New("boom"), want: http.StatusInternalServerError},
		{
			name: "AppErrorはラップ先のセンチネルで判定",
			err:  model.NewAppError("QUARTER_LIMIT", "上限", "", model.ErrConflict),
			want: http.StatusConflict,
		},
		{
			name: "fmt.Errorfでラップされていても判定できる",
			err:  fmt.Errorf("service: %w", model.ErrNotFound),
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("正常なリクエストはnil", func(t *testing.T) {
		req := model.PostQuarterRequest{Name: "第1クォーター", Number: 1}
		assert.Nil(t, ValidateStruct(req))
	})

	t.Run("必須フィールド欠落はフィールド名付きのエラー", func(t *testing.T) {
		req := model.PostQuarterRequest{Number: 1}
		appErr := ValidateStruct(req)

		assert.NotNil(t, appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
		assert.Equal(t, "name", appErr.Detail.Field)
		assert.ErrorIs(t, appErr, model.ErrInvalidInput)
	})

	t.Run("範囲外の値もエラー", func(t *testing.T) {
		req := model.PostQuarterRequest{Name: "範囲外", Number: 9}
		appErr := ValidateStruct(req)

		assert.NotNil(t, appErr)
		assert.Equal(t, "number", appErr.Detail.Field)
	})
}

// internal/handlers/params.go
package handlers

import (
	"fmt"
	"net/http"

	"curriculum_keep/internal/model"
)

// parseStatusQuery は ?status= クエリを解釈します。未指定なら nil (絞り込みなし)。
func parseStatusQuery(r *http.Request) (*model.Status, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}
	status := model.Status(raw)
	if !status.Valid() {
		return nil, model.NewAppError("INVALID_QUERY_PARAM",
			fmt.Sprintf("statusの値が正しくありません: %s", raw),
			"status", model.ErrInvalidInput)
	}
	return &status, nil
}

// internal/handlers/review_handler_test.go
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"curriculum_keep/internal/handlers"
	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"
	"curriculum_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupReviewRouter(svc *mocks.MockReviewService) *chi.Mux {
	h := handlers.NewReviewHandler(svc, nil)
	r := chi.NewRouter()
	r.Use(middleware.DevActorContextMiddleware)
	r.Route("/quarters/{quarter_id}", func(r chi.Router) {
		r.Post("/approve", h.ApproveQuarter)
		r.Post("/reject", h.RejectQuarter)
		r.Get("/reviews", h.GetQuarterReviews)
	})
	r.Route("/modules/{module_id}", func(r chi.Router) {
		r.Post("/approve", h.ApproveModule)
		r.Post("/reject", h.RejectModule)
		r.Get("/reviews", h.GetModuleReviews)
	})
	r.Route("/lessons/{lesson_id}", func(r chi.Router) {
		r.Post("/approve", h.ApproveLesson)
		r.Post("/reject", h.RejectLesson)
		r.Get("/reviews", h.GetLessonReviews)
	})
	return r
}

func TestReviewHandler_Approve(t *testing.T) {
	t.Run("正常系: コメント付き承認", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		result := &model.ReviewResultResponse{EntityID: "quarter_01", Status: model.StatusApproved}
		svc.On("Approve", mock.Anything, model.KindQuarter, "quarter_01", mock.AnythingOfType("*model.ApproveRequest")).
			Return(result, nil).Once()

		req := createRequest(t, http.MethodPost, "/quarters/quarter_01/approve", map[string]interface{}{"comment": "LGTM"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.ReviewResultResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, model.StatusApproved, got.Status)
	})

	t.Run("正常系: 空ボディでも承認できる", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		result := &model.ReviewResultResponse{EntityID: "quarter_01", Status: model.StatusApproved}
		svc.On("Approve", mock.Anything, model.KindQuarter, "quarter_01", mock.AnythingOfType("*model.ApproveRequest")).
			Return(result, nil).Once()

		req := createRequest(t, http.MethodPost, "/quarters/quarter_01/approve", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("異常系: 状態遷移の競合は409", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		svc.On("Approve", mock.Anything, model.KindQuarter, "quarter_01", mock.AnythingOfType("*model.ApproveRequest")).
			Return(nil, model.NewAppError("INVALID_STATE_TRANSITION",
				"現在の状態 approved からは承認できません。承認できるのは pending のみです。",
				"", model.ErrConflict)).Once()

		req := createRequest(t, http.MethodPost, "/quarters/quarter_01/approve", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		var got model.APIErrorResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, "INVALID_STATE_TRANSITION", got.Error.Code)
		assert.Contains(t, got.Error.Message, "approved")
	})

	t.Run("異常系: 対象が存在しなければ404", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		svc.On("Approve", mock.Anything, model.KindLesson, "lesson_q9_m9_99", mock.AnythingOfType("*model.ApproveRequest")).
			Return(nil, model.ErrNotFound).Once()

		req := createRequest(t, http.MethodPost, "/lessons/lesson_q9_m9_99/approve", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReviewHandler_Reject(t *testing.T) {
	t.Run("正常系: 却下が200で結果を返す", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		result := &model.ReviewResultResponse{EntityID: "quarter_01", Status: model.StatusRejected}
		svc.On("Reject", mock.Anything, model.KindQuarter, "quarter_01", mock.AnythingOfType("*model.RejectRequest")).
			Return(result, nil).Once()

		req := createRequest(t, http.MethodPost, "/quarters/quarter_01/reject", map[string]interface{}{
			"comment": "範囲が広すぎるため分割してください。",
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.ReviewResultResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, model.StatusRejected, got.Status)
	})

	t.Run("異常系: コメントなしは422でサービスに到達しない", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		req := createRequest(t, http.MethodPost, "/quarters/quarter_01/reject", map[string]interface{}{})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var got model.APIErrorResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, "VALIDATION_ERROR", got.Error.Code)
		assert.Equal(t, "comment", got.Error.Field)
		svc.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 短すぎるコメントは422", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		req := createRequest(t, http.MethodPost, "/quarters/quarter_01/reject", map[string]interface{}{
			"comment": "短い",
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		svc.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: ボディなしは422", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		req := createRequest(t, http.MethodPost, "/quarters/quarter_01/reject", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestReviewHandler_GetReviews(t *testing.T) {
	t.Run("正常系: 履歴が新しい順で返る", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		entries := []*model.ReviewEntry{
			{ID: 2, EntityKind: model.KindModule, EntityID: "module_q1_01", Action: model.ActionApprove, ResultingStatus: model.StatusApproved},
			{ID: 1, EntityKind: model.KindModule, EntityID: "module_q1_01", Action: model.ActionReject, Comment: "差し戻し", ResultingStatus: model.StatusRejected},
		}
		svc.On("ListReviews", mock.Anything, model.KindModule, "module_q1_01").Return(entries, nil).Once()

		req := createRequest(t, http.MethodGet, "/modules/module_q1_01/reviews", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []*model.ReviewEntry
		decodeBody(t, rec, &got)
		require.Len(t, got, 2)
		assert.Equal(t, model.ActionApprove, got[0].Action)
	})

	t.Run("正常系: 履歴ゼロは空配列", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		svc.On("ListReviews", mock.Anything, model.KindQuarter, "quarter_01").
			Return([]*model.ReviewEntry{}, nil).Once()

		req := createRequest(t, http.MethodGet, "/quarters/quarter_01/reviews", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("異常系: 対象が存在しなければ404", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		router := setupReviewRouter(svc)

		svc.On("ListReviews", mock.Anything, model.KindQuarter, "quarter_09").
			Return(nil, model.ErrNotFound).Once()

		req := createRequest(t, http.MethodGet, "/quarters/quarter_09/reviews", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

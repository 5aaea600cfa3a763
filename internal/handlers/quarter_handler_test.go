// internal/handlers/quarter_handler_test.go
package handlers_test

import (
	"net/http"
	"net/http/httptest"
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

func setupQuarterRouter(svc *mocks.MockQuarterService) *chi.Mux {
	h := handlers.NewQuarterHandler(svc, nil)
	r := chi.NewRouter()
	r.Use(middleware.DevActorContextMiddleware)
	r.Route("/quarters", func(r chi.Router) {
		r.Post("/", h.PostQuarter)
		r.Get("/", h.GetQuarters)
		r.Get("/{quarter_id}", h.GetQuarter)
		r.Delete("/{quarter_id}", h.DeleteQuarter)
	})
	return r
}

func TestQuarterHandler_PostQuarter(t *testing.T) {
	t.Run("正常系: 201とリソースを返す", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		created := &model.Quarter{QuarterID: "quarter_01", Name: "第1クォーター", Number: 1, Status: model.StatusPending}
		svc.On("CreateQuarter", mock.Anything, mock.AnythingOfType("*model.PostQuarterRequest")).
			Return(created, nil).Once()

		req := createRequest(t, http.MethodPost, "/quarters", map[string]interface{}{
			"name": "第1クォーター", "number": 1,
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got model.Quarter
		decodeBody(t, rec, &got)
		assert.Equal(t, "quarter_01", got.QuarterID)
		assert.Equal(t, model.StatusPending, got.Status)
	})

	t.Run("異常系: バリデーションエラーは422", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		// name欠落
		req := createRequest(t, http.MethodPost, "/quarters", map[string]interface{}{"number": 1})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var got model.APIErrorResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, "VALIDATION_ERROR", got.Error.Code)
		assert.Equal(t, "name", got.Error.Field)
		svc.AssertNotCalled(t, "CreateQuarter", mock.Anything, mock.Anything)
	})

	t.Run("異常系: 番号重複は409", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		svc.On("CreateQuarter", mock.Anything, mock.AnythingOfType("*model.PostQuarterRequest")).
			Return(nil, model.NewAppError("QUARTER_NUMBER_TAKEN", "この番号のクォーターは既に存在します。", "number", model.ErrConflict)).Once()

		req := createRequest(t, http.MethodPost, "/quarters", map[string]interface{}{
			"name": "重複", "number": 1,
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		var got model.APIErrorResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, "QUARTER_NUMBER_TAKEN", got.Error.Code)
	})

	t.Run("異常系: 空ボディは422", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		req := createRequest(t, http.MethodPost, "/quarters", nil)
		req.Body = http.NoBody
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("異常系: X-Actor-IDヘッダーなしは401", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		req := createRequest(t, http.MethodPost, "/quarters", map[string]interface{}{"name": "x", "number": 1})
		req.Header.Del("X-Actor-ID")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestQuarterHandler_GetQuarters(t *testing.T) {
	t.Run("正常系: modules_count付きの一覧", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		items := []*model.QuarterListItem{
			{Quarter: &model.Quarter{QuarterID: "quarter_01", Number: 1}, ModulesCount: 3},
		}
		svc.On("ListQuarters", mock.Anything, (*model.Status)(nil)).Return(items, nil).Once()

		req := createRequest(t, http.MethodGet, "/quarters", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []map[string]interface{}
		decodeBody(t, rec, &got)
		require.Len(t, got, 1)
		assert.Equal(t, float64(3), got[0]["modules_count"])
	})

	t.Run("正常系: statusクエリでフィルタ", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		pending := model.StatusPending
		svc.On("ListQuarters", mock.Anything, &pending).Return([]*model.QuarterListItem{}, nil).Once()

		req := createRequest(t, http.MethodGet, "/quarters?status=pending", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("異常系: 不正なstatus値は422", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		req := createRequest(t, http.MethodGet, "/quarters?status=bogus", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		svc.AssertNotCalled(t, "ListQuarters", mock.Anything, mock.Anything)
	})
}

func TestQuarterHandler_GetQuarter(t *testing.T) {
	t.Run("異常系: 存在しないIDは404", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		svc.On("GetQuarter", mock.Anything, "quarter_09").Return(nil, model.ErrNotFound).Once()

		req := createRequest(t, http.MethodGet, "/quarters/quarter_09", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var got model.APIErrorResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, "NOT_FOUND", got.Error.Code)
	})
}

func TestQuarterHandler_DeleteQuarter(t *testing.T) {
	t.Run("正常系: 削除サマリを200で返す", func(t *testing.T) {
		svc := mocks.NewMockQuarterService(t)
		router := setupQuarterRouter(svc)

		summary := &model.CascadeSummary{ModulesDeleted: 2, LessonsDeleted: 5, Failed: 0}
		svc.On("DeleteQuarter", mock.Anything, "quarter_01").Return(summary, nil).Once()

		req := createRequest(t, http.MethodDelete, "/quarters/quarter_01", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.CascadeSummary
		decodeBody(t, rec, &got)
		assert.Equal(t, int64(2), got.ModulesDeleted)
		assert.Equal(t, int64(5), got.LessonsDeleted)
	})
}

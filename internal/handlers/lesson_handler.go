// internal/handlers/lesson_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"curriculum_keep/internal/model"
	"curriculum_keep/internal/service"
	"curriculum_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type LessonHandler struct {
	service service.LessonService
	logger  *slog.Logger
}

func NewLessonHandler(s service.LessonService, logger *slog.Logger) *LessonHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LessonHandler{
		service: s,
		logger:  logger,
	}
}

// PostLesson は新しいレッスンリソースを作成するためのハンドラ。
// 親モジュールが存在しない場合は404を返し、何も作成されません。
func (h *LessonHandler) PostLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLesson"))

	var req model.PostLessonRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()), slog.Any("request", req))
		webutil.HandleError(w, logger, appErr)
		return
	}

	lesson, err := h.service.CreateLesson(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating lesson in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson created successfully", slog.String("lesson_id", lesson.LessonID))
	webutil.RespondWithJSON(w, http.StatusCreated, lesson, logger)
}

// GetLessons はレッスン一覧を取得するためのハンドラ。?module_id= で絞り込めます。
func (h *LessonHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLessons"))

	status, err := parseStatusQuery(r)
	if err != nil {
		logger.Warn("Invalid status query", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	moduleID := r.URL.Query().Get("module_id")

	lessons, err := h.service.ListLessons(r.Context(), moduleID, status)
	if err != nil {
		logger.Error("Error listing lessons in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if lessons == nil {
		lessons = []*model.Lesson{}
	}
	logger.Info("Lessons listed successfully", slog.Int("count", len(lessons)))
	webutil.RespondWithJSON(w, http.StatusOK, lessons, logger)
}

// GetLesson は特定のレッスンリソースを取得するためのハンドラ
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLesson"))

	lessonID := chi.URLParam(r, "lesson_id")
	logger = logger.With(slog.String("lesson_id", lessonID))

	lesson, err := h.service.GetLesson(r.Context(), lessonID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Lesson not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting lesson from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, lesson, logger)
}

// PatchLesson は特定のレッスンリソースの一部を更新するためのハンドラ。
// contents は部分マージではなくリスト全体の置き換えです。
func (h *LessonHandler) PatchLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchLesson"))

	lessonID := chi.URLParam(r, "lesson_id")
	logger = logger.With(slog.String("lesson_id", lessonID))

	var req model.PatchLessonRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchLesson request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.Title == nil && req.Topic == nil && req.Contents == nil {
		logger.Warn("PatchLesson called with no fields provided for update", slog.Any("request", req))
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()), slog.Any("request", req))
		webutil.HandleError(w, logger, appErr)
		return
	}

	lesson, err := h.service.UpdateLesson(r.Context(), lessonID, &req)
	if err != nil {
		logger.Error("Error patching lesson in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, lesson, logger)
}

// DeleteLesson は特定のレッスンリソースを削除するためのハンドラ
func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteLesson"))

	lessonID := chi.URLParam(r, "lesson_id")
	logger = logger.With(slog.String("lesson_id", lessonID))

	err := h.service.DeleteLesson(r.Context(), lessonID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Lesson not found for deletion", slog.Any("error", err))
		} else {
			logger.Error("Error deleting lesson in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

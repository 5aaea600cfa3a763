// internal/handlers/quarter_handler.go
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

type QuarterHandler struct {
	service service.QuarterService
	logger  *slog.Logger
}

func NewQuarterHandler(s service.QuarterService, logger *slog.Logger) *QuarterHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuarterHandler{
		service: s,
		logger:  logger,
	}
}

// PostQuarter は新しいクォーターリソースを作成するためのハンドラ
func (h *QuarterHandler) PostQuarter(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuarter"))

	var req model.PostQuarterRequest
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

	quarter, err := h.service.CreateQuarter(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating quarter in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quarter created successfully", slog.String("quarter_id", quarter.QuarterID))
	webutil.RespondWithJSON(w, http.StatusCreated, quarter, logger)
}

// GetQuarters はクォーター一覧を取得するためのハンドラ。
// 各要素には配下モジュール数 (modules_count) が付与されます。
func (h *QuarterHandler) GetQuarters(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuarters"))

	status, err := parseStatusQuery(r)
	if err != nil {
		logger.Warn("Invalid status query", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	quarters, err := h.service.ListQuarters(r.Context(), status)
	if err != nil {
		logger.Error("Error listing quarters in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if quarters == nil {
		quarters = []*model.QuarterListItem{}
	}
	logger.Info("Quarters listed successfully", slog.Int("count", len(quarters)))
	webutil.RespondWithJSON(w, http.StatusOK, quarters, logger)
}

// GetQuarter は特定のクォーターリソースを取得するためのハンドラ
func (h *QuarterHandler) GetQuarter(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuarter"))

	quarterID := chi.URLParam(r, "quarter_id")
	logger = logger.With(slog.String("quarter_id", quarterID))

	quarter, err := h.service.GetQuarter(r.Context(), quarterID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Quarter not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting quarter from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quarter retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, quarter, logger)
}

// DeleteQuarter はクォーターと配下のモジュール・レッスンを削除するためのハンドラ。
// 成功時は削除サマリ (modules_deleted / lessons_deleted / failed) を返します。
func (h *QuarterHandler) DeleteQuarter(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteQuarter"))

	quarterID := chi.URLParam(r, "quarter_id")
	logger = logger.With(slog.String("quarter_id", quarterID))

	summary, err := h.service.DeleteQuarter(r.Context(), quarterID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Quarter not found for deletion", slog.Any("error", err))
		} else {
			logger.Error("Error deleting quarter in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quarter deleted successfully",
		slog.Int64("modules_deleted", summary.ModulesDeleted),
		slog.Int64("lessons_deleted", summary.LessonsDeleted),
		slog.Int64("failed", summary.Failed),
	)
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

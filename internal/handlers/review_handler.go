// internal/handlers/review_handler.go
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

// ReviewHandler は3種別共通の承認・却下・履歴エンドポイントを提供します。
// ルーティング上は /quarters/{id}/approve のように種別ごとのURLですが、
// 実装は kind をパラメータ化した共通処理に委譲します。
type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// --- Quarter ---

func (h *ReviewHandler) ApproveQuarter(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, model.KindQuarter, "quarter_id")
}

func (h *ReviewHandler) RejectQuarter(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, model.KindQuarter, "quarter_id")
}

func (h *ReviewHandler) GetQuarterReviews(w http.ResponseWriter, r *http.Request) {
	h.listReviews(w, r, model.KindQuarter, "quarter_id")
}

// --- Module ---

func (h *ReviewHandler) ApproveModule(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, model.KindModule, "module_id")
}

func (h *ReviewHandler) RejectModule(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, model.KindModule, "module_id")
}

func (h *ReviewHandler) GetModuleReviews(w http.ResponseWriter, r *http.Request) {
	h.listReviews(w, r, model.KindModule, "module_id")
}

// --- Lesson ---

func (h *ReviewHandler) ApproveLesson(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, model.KindLesson, "lesson_id")
}

func (h *ReviewHandler) RejectLesson(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, model.KindLesson, "lesson_id")
}

func (h *ReviewHandler) GetLessonReviews(w http.ResponseWriter, r *http.Request) {
	h.listReviews(w, r, model.KindLesson, "lesson_id")
}

// --- 共通処理 ---

func (h *ReviewHandler) approve(w http.ResponseWriter, r *http.Request, kind model.EntityKind, paramName string) {
	entityID := chi.URLParam(r, paramName)
	logger := h.logger.With(
		slog.String("handler", "Approve"),
		slog.String("entity_kind", string(kind)),
		slog.String("entity_id", entityID),
	)

	var req model.ApproveRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		// 承認はコメント任意なので、空ボディも許容する
		req = model.ApproveRequest{}
	}

	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	result, err := h.service.Approve(r.Context(), kind, entityID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			logger.Info("Approve rejected by service", slog.Any("error", err))
		} else {
			logger.Error("Error approving in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Approved successfully", slog.String("status", string(result.Status)))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func (h *ReviewHandler) reject(w http.ResponseWriter, r *http.Request, kind model.EntityKind, paramName string) {
	entityID := chi.URLParam(r, paramName)
	logger := h.logger.With(
		slog.String("handler", "Reject"),
		slog.String("entity_kind", string(kind)),
		slog.String("entity_id", entityID),
	)

	var req model.RejectRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode reject request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	// コメント必須・最低文字数。状態に触れる前に弾く。
	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	result, err := h.service.Reject(r.Context(), kind, entityID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			logger.Info("Reject refused by service", slog.Any("error", err))
		} else {
			logger.Error("Error rejecting in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Rejected successfully", slog.String("status", string(result.Status)))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func (h *ReviewHandler) listReviews(w http.ResponseWriter, r *http.Request, kind model.EntityKind, paramName string) {
	entityID := chi.URLParam(r, paramName)
	logger := h.logger.With(
		slog.String("handler", "GetReviews"),
		slog.String("entity_kind", string(kind)),
		slog.String("entity_id", entityID),
	)

	entries, err := h.service.ListReviews(r.Context(), kind, entityID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Entity not found for review history", slog.Any("error", err))
		} else {
			logger.Error("Error listing reviews in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review history listed successfully", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

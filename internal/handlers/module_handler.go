// internal/handlers/module_handler.go
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

type ModuleHandler struct {
	service service.ModuleService
	logger  *slog.Logger
}

func NewModuleHandler(s service.ModuleService, logger *slog.Logger) *ModuleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModuleHandler{
		service: s,
		logger:  logger,
	}
}

// PostModule は新しいモジュールリソースを作成するためのハンドラ。
// 親クォーターが存在しない場合は404を返し、何も作成されません。
func (h *ModuleHandler) PostModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostModule"))

	var req model.PostModuleRequest
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

	module, err := h.service.CreateModule(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating module in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module created successfully", slog.String("module_id", module.ModuleID))
	webutil.RespondWithJSON(w, http.StatusCreated, module, logger)
}

// GetModules はモジュール一覧を取得するためのハンドラ。
// ?quarter_id= で親クォーター配下 (レガシー参照含む) に絞り込めます。
func (h *ModuleHandler) GetModules(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetModules"))

	status, err := parseStatusQuery(r)
	if err != nil {
		logger.Warn("Invalid status query", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	quarterID := r.URL.Query().Get("quarter_id")

	modules, err := h.service.ListModules(r.Context(), quarterID, status)
	if err != nil {
		logger.Error("Error listing modules in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if modules == nil {
		modules = []*model.Module{}
	}
	logger.Info("Modules listed successfully", slog.Int("count", len(modules)))
	webutil.RespondWithJSON(w, http.StatusOK, modules, logger)
}

// GetModule は特定のモジュールリソースを取得するためのハンドラ
func (h *ModuleHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetModule"))

	moduleID := chi.URLParam(r, "module_id")
	logger = logger.With(slog.String("module_id", moduleID))

	module, err := h.service.GetModule(r.Context(), moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Module not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting module from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, module, logger)
}

// PatchModule は特定のモジュールリソースの一部を更新するためのハンドラ
func (h *ModuleHandler) PatchModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchModule"))

	moduleID := chi.URLParam(r, "module_id")
	logger = logger.With(slog.String("module_id", moduleID))

	var req model.PatchModuleRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchModule request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.Title == nil && req.Topic == nil {
		logger.Warn("PatchModule called with no fields provided for update", slog.Any("request", req))
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()), slog.Any("request", req))
		webutil.HandleError(w, logger, appErr)
		return
	}

	module, err := h.service.UpdateModule(r.Context(), moduleID, &req)
	if err != nil {
		logger.Error("Error patching module in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, module, logger)
}

// DeleteModule はモジュールと配下レッスンを削除するためのハンドラ
func (h *ModuleHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteModule"))

	moduleID := chi.URLParam(r, "module_id")
	logger = logger.With(slog.String("module_id", moduleID))

	summary, err := h.service.DeleteModule(r.Context(), moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Module not found for deletion", slog.Any("error", err))
		} else {
			logger.Error("Error deleting module in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module deleted successfully",
		slog.Int64("lessons_deleted", summary.LessonsDeleted),
		slog.Int64("failed", summary.Failed),
	)
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

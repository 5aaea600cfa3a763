// internal/service/module_service.go
package service

import (
	"context"
	"errors"
	"time"

	"curriculum_keep/internal/config"
	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"
	"curriculum_keep/internal/repository"

	"gorm.io/gorm"
)

type ModuleService interface {
	CreateModule(ctx context.Context, req *model.PostModuleRequest) (*model.Module, error)
	GetModule(ctx context.Context, moduleID string) (*model.Module, error)
	// ListModules は quarterID が空なら全件、指定時はそのクォーター配下
	// (レガシー参照含む) を返します。
	ListModules(ctx context.Context, quarterID string, status *model.Status) ([]*model.Module, error)
	UpdateModule(ctx context.Context, moduleID string, req *model.PatchModuleRequest) (*model.Module, error)
	DeleteModule(ctx context.Context, moduleID string) (*model.CascadeSummary, error)
}

type moduleService struct {
	db          *gorm.DB
	cfg         *config.Config
	quarterRepo repository.QuarterRepository
	moduleRepo  repository.ModuleRepository
	lessonRepo  repository.LessonRepository
	reviewRepo  repository.ReviewRepository
	seqRepo     repository.SequenceRepository
	resolver    *ActorResolver
}

func NewModuleService(db *gorm.DB, cfg *config.Config, quarterRepo repository.QuarterRepository, moduleRepo repository.ModuleRepository, lessonRepo repository.LessonRepository, reviewRepo repository.ReviewRepository, seqRepo repository.SequenceRepository, resolver *ActorResolver) ModuleService {
	return &moduleService{
		db:          db,
		cfg:         cfg,
		quarterRepo: quarterRepo,
		moduleRepo:  moduleRepo,
		lessonRepo:  lessonRepo,
		reviewRepo:  reviewRepo,
		seqRepo:     seqRepo,
		resolver:    resolver,
	}
}

func (s *moduleService) CreateModule(ctx context.Context, req *model.PostModuleRequest) (*model.Module, error) {
	actor := s.resolver.Resolve(ctx, req.Actor)

	status := model.StatusApproved
	var approvedAt *time.Time
	if s.cfg.ApprovalRequired(string(model.KindModule)) {
		status = model.StatusPending
	} else {
		now := time.Now()
		approvedAt = &now
	}

	var createdModule *model.Module

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 親クォーターの存在確認。ここで404を確定させ、何も書き込まない。
		quarter, err := s.quarterRepo.FindByID(ctx, tx, req.QuarterID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PARENT_NOT_FOUND",
					"指定されたクォーターが見つかりません。",
					"quarter_id", model.ErrNotFound)
			}
			return err
		}

		// 2. 連番の払い出し。カウンタ行の upsert なので同時作成でも重複しない。
		seq, err := s.seqRepo.Next(ctx, tx, model.ModuleSequenceScope(quarter.QuarterID))
		if err != nil {
			return err
		}

		module := &model.Module{
			ModuleID:      model.FormatModuleID(quarter.Number, seq),
			Title:         req.Title,
			Topic:         req.Topic,
			Number:        seq,
			QuarterID:     quarter.QuarterID,
			QuarterNumber: quarter.Number,
			Status:        status,
			CreatedBy:     actor,
			ApprovedAt:    approvedAt,
		}
		if err := s.moduleRepo.Create(ctx, tx, module); err != nil {
			return err
		}

		createdModule = module
		return nil // コミット
	})

	if err != nil {
		return nil, err
	}
	return createdModule, nil
}

func (s *moduleService) GetModule(ctx context.Context, moduleID string) (*model.Module, error) {
	return s.moduleRepo.FindByID(ctx, s.db, moduleID)
}

func (s *moduleService) ListModules(ctx context.Context, quarterID string, status *model.Status) ([]*model.Module, error) {
	if quarterID == "" {
		return s.moduleRepo.List(ctx, s.db, status)
	}
	return s.moduleRepo.ListByQuarter(ctx, s.db, quarterID, status)
}

func (s *moduleService) UpdateModule(ctx context.Context, moduleID string, req *model.PatchModuleRequest) (*model.Module, error) {
	var updatedModule *model.Module

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		if _, err := s.moduleRepo.FindByID(ctx, tx, moduleID); err != nil {
			return err
		}

		// 2. 指定されたフィールドだけを書き込む (部分更新)
		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Topic != nil {
			updates["topic"] = *req.Topic
		}
		if len(updates) > 0 {
			if err := s.moduleRepo.Update(ctx, tx, moduleID, updates); err != nil {
				return err
			}
		}

		// 更新後のデータを取得 (トランザクション内で取得するのが確実)
		var err error
		updatedModule, err = s.moduleRepo.FindByID(ctx, tx, moduleID)
		return err
	})

	if err != nil {
		return nil, err
	}
	return updatedModule, nil
}

// DeleteModule はモジュール本体と監査ログを先に削除し、
// 配下レッスンをベストエフォートで掃除します。
func (s *moduleService) DeleteModule(ctx context.Context, moduleID string) (*model.CascadeSummary, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.moduleRepo.FindByID(ctx, s.db, moduleID); err != nil {
		return nil, err // model.ErrNotFound
	}

	summary := &model.CascadeSummary{}
	cascadeDeleteModule(ctx, s.db, s.moduleRepo, s.lessonRepo, s.reviewRepo, moduleID, summary)

	// 本体の削除に失敗していたらエラーとして返す
	if summary.ModulesDeleted == 0 {
		return nil, model.ErrInternalServer
	}

	logger.Info("Module deleted with cascade",
		"module_id", moduleID,
		"lessons_deleted", summary.LessonsDeleted,
		"failed", summary.Failed,
	)
	return summary, nil
}

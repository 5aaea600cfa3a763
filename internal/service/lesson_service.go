// internal/service/lesson_service.go
package service

import (
	"context"
	"errors"
	"time"

	"curriculum_keep/internal/config"
	"curriculum_keep/internal/model"
	"curriculum_keep/internal/repository"

	"gorm.io/gorm"
)

type LessonService interface {
	CreateLesson(ctx context.Context, req *model.PostLessonRequest) (*model.Lesson, error)
	GetLesson(ctx context.Context, lessonID string) (*model.Lesson, error)
	ListLessons(ctx context.Context, moduleID string, status *model.Status) ([]*model.Lesson, error)
	UpdateLesson(ctx context.Context, lessonID string, req *model.PatchLessonRequest) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID string) error
}

type lessonService struct {
	db         *gorm.DB
	cfg        *config.Config
	moduleRepo repository.ModuleRepository
	lessonRepo repository.LessonRepository
	reviewRepo repository.ReviewRepository
	seqRepo    repository.SequenceRepository
	resolver   *ActorResolver
}

func NewLessonService(db *gorm.DB, cfg *config.Config, moduleRepo repository.ModuleRepository, lessonRepo repository.LessonRepository, reviewRepo repository.ReviewRepository, seqRepo repository.SequenceRepository, resolver *ActorResolver) LessonService {
	return &lessonService{
		db:         db,
		cfg:        cfg,
		moduleRepo: moduleRepo,
		lessonRepo: lessonRepo,
		reviewRepo: reviewRepo,
		seqRepo:    seqRepo,
		resolver:   resolver,
	}
}

func (s *lessonService) CreateLesson(ctx context.Context, req *model.PostLessonRequest) (*model.Lesson, error) {
	actor := s.resolver.Resolve(ctx, req.Actor)

	status := model.StatusApproved
	var approvedAt *time.Time
	if s.cfg.ApprovalRequired(string(model.KindLesson)) {
		status = model.StatusPending
	} else {
		now := time.Now()
		approvedAt = &now
	}

	var createdLesson *model.Lesson

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 親モジュールの存在確認
		module, err := s.moduleRepo.FindByID(ctx, tx, req.ModuleID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PARENT_NOT_FOUND",
					"指定されたモジュールが見つかりません。",
					"module_id", model.ErrNotFound)
			}
			return err
		}

		// 2. 連番の払い出し
		seq, err := s.seqRepo.Next(ctx, tx, model.LessonSequenceScope(module.ModuleID))
		if err != nil {
			return err
		}

		// IDと表示用番号は親から引き写す (非正規化)
		lesson := &model.Lesson{
			LessonID:      model.FormatLessonID(module.QuarterNumber, module.Number, seq),
			Title:         req.Title,
			Topic:         req.Topic,
			Contents:      model.ContentBlocks(req.Contents),
			ModuleID:      module.ModuleID,
			QuarterNumber: module.QuarterNumber,
			ModuleNumber:  module.Number,
			Number:        seq,
			Status:        status,
			CreatedBy:     actor,
			ApprovedAt:    approvedAt,
		}
		if err := s.lessonRepo.Create(ctx, tx, lesson); err != nil {
			return err
		}

		createdLesson = lesson
		return nil // コミット
	})

	if err != nil {
		return nil, err
	}
	return createdLesson, nil
}

func (s *lessonService) GetLesson(ctx context.Context, lessonID string) (*model.Lesson, error) {
	return s.lessonRepo.FindByID(ctx, s.db, lessonID)
}

func (s *lessonService) ListLessons(ctx context.Context, moduleID string, status *model.Status) ([]*model.Lesson, error) {
	if moduleID == "" {
		return s.lessonRepo.List(ctx, s.db, status)
	}
	return s.lessonRepo.ListByModule(ctx, s.db, moduleID, status)
}

func (s *lessonService) UpdateLesson(ctx context.Context, lessonID string, req *model.PatchLessonRequest) (*model.Lesson, error) {
	var updatedLesson *model.Lesson

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.lessonRepo.FindByID(ctx, tx, lessonID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Topic != nil {
			updates["topic"] = *req.Topic
		}
		if req.Contents != nil {
			// Contents は部分マージではなくリスト全体の置き換え
			updates["contents"] = model.ContentBlocks(*req.Contents)
		}
		if len(updates) > 0 {
			if err := s.lessonRepo.Update(ctx, tx, lessonID, updates); err != nil {
				return err
			}
		}

		var err error
		updatedLesson, err = s.lessonRepo.FindByID(ctx, tx, lessonID)
		return err
	})

	if err != nil {
		return nil, err
	}
	return updatedLesson, nil
}

func (s *lessonService) DeleteLesson(ctx context.Context, lessonID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.lessonRepo.FindByID(ctx, tx, lessonID); err != nil {
			return err // model.ErrNotFound
		}
		if err := s.lessonRepo.Delete(ctx, tx, lessonID); err != nil {
			return err
		}
		return s.reviewRepo.DeleteByEntity(ctx, tx, model.KindLesson, lessonID)
	})
}

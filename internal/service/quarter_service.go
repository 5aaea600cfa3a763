// internal/service/quarter_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"curriculum_keep/internal/config"
	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"
	"curriculum_keep/internal/repository"

	"gorm.io/gorm"
)

type QuarterService interface {
	CreateQuarter(ctx context.Context, req *model.PostQuarterRequest) (*model.Quarter, error)
	GetQuarter(ctx context.Context, quarterID string) (*model.Quarter, error)
	ListQuarters(ctx context.Context, status *model.Status) ([]*model.QuarterListItem, error)
	DeleteQuarter(ctx context.Context, quarterID string) (*model.CascadeSummary, error)
}

type quarterService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	cfg         *config.Config
	quarterRepo repository.QuarterRepository
	moduleRepo  repository.ModuleRepository
	lessonRepo  repository.LessonRepository
	reviewRepo  repository.ReviewRepository
	resolver    *ActorResolver
}

func NewQuarterService(db *gorm.DB, cfg *config.Config, quarterRepo repository.QuarterRepository, moduleRepo repository.ModuleRepository, lessonRepo repository.LessonRepository, reviewRepo repository.ReviewRepository, resolver *ActorResolver) QuarterService {
	return &quarterService{
		db:          db,
		cfg:         cfg,
		quarterRepo: quarterRepo,
		moduleRepo:  moduleRepo,
		lessonRepo:  lessonRepo,
		reviewRepo:  reviewRepo,
		resolver:    resolver,
	}
}

func (s *quarterService) CreateQuarter(ctx context.Context, req *model.PostQuarterRequest) (*model.Quarter, error) {
	if req.Number < 1 || req.Number > config.MaxQuarters {
		return nil, model.NewAppError("VALIDATION_ERROR",
			fmt.Sprintf("クォーター番号は1〜%dで指定してください。", config.MaxQuarters),
			"number", model.ErrInvalidInput)
	}

	actor := s.resolver.Resolve(ctx, req.Actor)

	status := model.StatusApproved
	var approvedAt *time.Time
	if s.cfg.ApprovalRequired(string(model.KindQuarter)) {
		status = model.StatusPending
	} else {
		now := time.Now()
		approvedAt = &now
	}

	var createdQuarter *model.Quarter

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 上限チェック。number∈[1,4] と一意インデックスから論理的には不要だが、
		//    利用者に分かるメッセージを返すために先に数える。最終防衛線は制約違反→Conflict。
		count, err := s.quarterRepo.Count(ctx, tx)
		if err != nil {
			return err
		}
		if count >= config.MaxQuarters {
			return model.NewAppError("QUARTER_LIMIT",
				fmt.Sprintf("クォーターは最大%d件までです。", config.MaxQuarters),
				"", model.ErrConflict)
		}

		// 2. 番号の重複チェック
		exists, err := s.quarterRepo.NumberExists(ctx, tx, req.Number)
		if err != nil {
			return err
		}
		if exists {
			return model.NewAppError("QUARTER_NUMBER_TAKEN",
				fmt.Sprintf("番号 %d のクォーターは既に存在します。", req.Number),
				"number", model.ErrConflict)
		}

		// 3. 作成。IDはクォーター番号から決まる。
		quarter := &model.Quarter{
			QuarterID:  model.FormatQuarterID(req.Number),
			Name:       req.Name,
			Number:     req.Number,
			Status:     status,
			CreatedBy:  actor,
			ApprovedAt: approvedAt,
		}
		if err := s.quarterRepo.Create(ctx, tx, quarter); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// 同時作成の敗者 (一意インデックス違反)
				return model.NewAppError("QUARTER_NUMBER_TAKEN",
					fmt.Sprintf("番号 %d のクォーターは既に存在します。", req.Number),
					"number", model.ErrConflict)
			}
			return err
		}

		createdQuarter = quarter
		return nil // コミット
	})

	if err != nil {
		return nil, err
	}
	return createdQuarter, nil
}

func (s *quarterService) GetQuarter(ctx context.Context, quarterID string) (*model.Quarter, error) {
	return s.quarterRepo.FindByID(ctx, s.db, quarterID)
}

func (s *quarterService) ListQuarters(ctx context.Context, status *model.Status) ([]*model.QuarterListItem, error) {
	quarters, err := s.quarterRepo.List(ctx, s.db, status)
	if err != nil {
		return nil, err
	}

	items := make([]*model.QuarterListItem, 0, len(quarters))
	for _, q := range quarters {
		count, err := s.moduleRepo.CountByQuarter(ctx, s.db, q.QuarterID)
		if err != nil {
			return nil, err
		}
		items = append(items, &model.QuarterListItem{
			Quarter:      q,
			ModulesCount: count,
		})
	}
	return items, nil
}

// DeleteQuarter はクォーター本体と監査ログを1トランザクションで削除したのち、
// 配下のモジュール・レッスンをベストエフォートで掃除します。
// 本体削除の失敗はエラー、子孫の失敗はサマリの failed 計上のみで処理を続けます。
func (s *quarterService) DeleteQuarter(ctx context.Context, quarterID string) (*model.CascadeSummary, error) {
	logger := middleware.GetLogger(ctx)

	// 子孫の列挙は本体削除より前に行う。レガシー参照も含めて拾う。
	modules, err := s.moduleRepo.ListByQuarter(ctx, s.db, quarterID, nil)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.quarterRepo.FindByID(ctx, tx, quarterID); err != nil {
			return err // model.ErrNotFound
		}
		if err := s.quarterRepo.Delete(ctx, tx, quarterID); err != nil {
			return err
		}
		return s.reviewRepo.DeleteByEntity(ctx, tx, model.KindQuarter, quarterID)
	})
	if err != nil {
		return nil, err
	}

	summary := &model.CascadeSummary{}
	for _, m := range modules {
		cascadeDeleteModule(ctx, s.db, s.moduleRepo, s.lessonRepo, s.reviewRepo, m.ModuleID, summary)
	}

	logger.Info("Quarter deleted with cascade",
		"quarter_id", quarterID,
		"modules_deleted", summary.ModulesDeleted,
		"lessons_deleted", summary.LessonsDeleted,
		"failed", summary.Failed,
	)
	return summary, nil
}

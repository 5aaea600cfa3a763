// internal/service/review_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"curriculum_keep/internal/config"
	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"
	"curriculum_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	Approve(ctx context.Context, kind model.EntityKind, entityID string, req *model.ApproveRequest) (*model.ReviewResultResponse, error)
	Reject(ctx context.Context, kind model.EntityKind, entityID string, req *model.RejectRequest) (*model.ReviewResultResponse, error)
	// ListReviews は新しい順の全履歴を返します。対象が存在しなければ ErrNotFound、
	// 存在して履歴がなければ空スライスです (404と空配列は区別される)。
	ListReviews(ctx context.Context, kind model.EntityKind, entityID string) ([]*model.ReviewEntry, error)
}

type reviewService struct {
	db          *gorm.DB
	cfg         *config.Config
	quarterRepo repository.QuarterRepository
	moduleRepo  repository.ModuleRepository
	lessonRepo  repository.LessonRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	resolver    *ActorResolver
	mailer      Mailer
}

func NewReviewService(db *gorm.DB, cfg *config.Config, quarterRepo repository.QuarterRepository, moduleRepo repository.ModuleRepository, lessonRepo repository.LessonRepository, reviewRepo repository.ReviewRepository, userRepo repository.UserRepository, resolver *ActorResolver, mailer Mailer) ReviewService {
	return &reviewService{
		db:          db,
		cfg:         cfg,
		quarterRepo: quarterRepo,
		moduleRepo:  moduleRepo,
		lessonRepo:  lessonRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		resolver:    resolver,
		mailer:      mailer,
	}
}

// entityMeta は種別をまたいだレビュー処理に必要な最小限のスナップショットです
type entityMeta struct {
	Status    model.Status
	CreatedBy model.Actor
}

func (s *reviewService) findEntity(ctx context.Context, db *gorm.DB, kind model.EntityKind, entityID string) (*entityMeta, error) {
	switch kind {
	case model.KindQuarter:
		q, err := s.quarterRepo.FindByID(ctx, db, entityID)
		if err != nil {
			return nil, err
		}
		return &entityMeta{Status: q.Status, CreatedBy: q.CreatedBy}, nil
	case model.KindModule:
		m, err := s.moduleRepo.FindByID(ctx, db, entityID)
		if err != nil {
			return nil, err
		}
		return &entityMeta{Status: m.Status, CreatedBy: m.CreatedBy}, nil
	case model.KindLesson:
		l, err := s.lessonRepo.FindByID(ctx, db, entityID)
		if err != nil {
			return nil, err
		}
		return &entityMeta{Status: l.Status, CreatedBy: l.CreatedBy}, nil
	default:
		return nil, model.ErrInvalidInput
	}
}

func (s *reviewService) transitionStatus(ctx context.Context, tx *gorm.DB, kind model.EntityKind, entityID string, from, to model.Status, approvedAt *time.Time) (int64, error) {
	switch kind {
	case model.KindQuarter:
		return s.quarterRepo.TransitionStatus(ctx, tx, entityID, from, to, approvedAt)
	case model.KindModule:
		return s.moduleRepo.TransitionStatus(ctx, tx, entityID, from, to, approvedAt)
	case model.KindLesson:
		return s.lessonRepo.TransitionStatus(ctx, tx, entityID, from, to, approvedAt)
	default:
		return 0, model.ErrInvalidInput
	}
}

func (s *reviewService) forceStatus(ctx context.Context, tx *gorm.DB, kind model.EntityKind, entityID string, to model.Status, approvedAt *time.Time) error {
	switch kind {
	case model.KindQuarter:
		return s.quarterRepo.ForceStatus(ctx, tx, entityID, to, approvedAt)
	case model.KindModule:
		return s.moduleRepo.ForceStatus(ctx, tx, entityID, to, approvedAt)
	case model.KindLesson:
		return s.lessonRepo.ForceStatus(ctx, tx, entityID, to, approvedAt)
	default:
		return model.ErrInvalidInput
	}
}

func (s *reviewService) Approve(ctx context.Context, kind model.EntityKind, entityID string, req *model.ApproveRequest) (*model.ReviewResultResponse, error) {
	if !kind.Valid() {
		return nil, model.ErrInvalidInput
	}

	actor := s.resolver.Resolve(ctx, req.Actor)

	var creator model.Actor

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		meta, err := s.findEntity(ctx, tx, kind, entityID)
		if err != nil {
			return err // model.ErrNotFound
		}
		creator = meta.CreatedBy

		now := time.Now()

		if s.cfg.ApprovalRequired(string(kind)) {
			// pending の行だけを条件付きUPDATEで遷移させる。
			// 影響行数0は並行リクエストの敗者なので、遷移後の状態を読み直して競合を報告する。
			rows, err := s.transitionStatus(ctx, tx, kind, entityID, model.StatusPending, model.StatusApproved, &now)
			if err != nil {
				return err
			}
			if rows == 0 {
				current, err := s.findEntity(ctx, tx, kind, entityID)
				if err != nil {
					return err
				}
				return model.NewAppError("INVALID_STATE_TRANSITION",
					fmt.Sprintf("現在の状態 %s からは承認できません。承認できるのは %s のみです。", current.Status, model.StatusPending),
					"", model.ErrConflict)
			}
		} else {
			// 承認ゲートが無効な種別は作成時点で approved。
			// 残存エンドポイントは後方互換として approved への強制遷移で振る舞う。
			if err := s.forceStatus(ctx, tx, kind, entityID, model.StatusApproved, &now); err != nil {
				return err
			}
		}

		// 監査ログは状態変更と同一トランザクションで追記する
		entry := &model.ReviewEntry{
			EntityKind:      kind,
			EntityID:        entityID,
			Action:          model.ActionApprove,
			Comment:         req.Comment,
			Actor:           actor,
			ResultingStatus: model.StatusApproved,
		}
		return s.reviewRepo.Append(ctx, tx, entry)
	})

	if err != nil {
		return nil, err
	}

	s.notifyCreator(ctx, creator, kind, entityID, model.ActionApprove, req.Comment)

	return &model.ReviewResultResponse{EntityID: entityID, Status: model.StatusApproved}, nil
}

func (s *reviewService) Reject(ctx context.Context, kind model.EntityKind, entityID string, req *model.RejectRequest) (*model.ReviewResultResponse, error) {
	if !kind.Valid() {
		return nil, model.ErrInvalidInput
	}

	// コメント不足はいかなる書き込みよりも先に弾く
	if utf8.RuneCountInString(req.Comment) < config.MinRejectCommentLength {
		return nil, model.NewAppError("COMMENT_TOO_SHORT",
			fmt.Sprintf("却下コメントは%d文字以上で入力してください。", config.MinRejectCommentLength),
			"comment", model.ErrInvalidInput)
	}

	actor := s.resolver.Resolve(ctx, req.Actor)
	gated := s.cfg.ApprovalRequired(string(kind))

	var creator model.Actor
	resultStatus := model.StatusRejected

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		meta, err := s.findEntity(ctx, tx, kind, entityID)
		if err != nil {
			return err
		}
		creator = meta.CreatedBy

		if gated {
			rows, err := s.transitionStatus(ctx, tx, kind, entityID, model.StatusPending, model.StatusRejected, nil)
			if err != nil {
				return err
			}
			if rows == 0 {
				current, err := s.findEntity(ctx, tx, kind, entityID)
				if err != nil {
					return err
				}
				return model.NewAppError("INVALID_STATE_TRANSITION",
					fmt.Sprintf("現在の状態 %s からは却下できません。却下できるのは %s のみです。", current.Status, model.StatusPending),
					"", model.ErrConflict)
			}
		} else {
			// ゲート無効種別のレビューは状態に影響しない。approved に固定したまま
			// コメントだけを監査ログに残す (旧システムからの据え置き挙動)。
			now := time.Now()
			if err := s.forceStatus(ctx, tx, kind, entityID, model.StatusApproved, &now); err != nil {
				return err
			}
			resultStatus = model.StatusApproved
		}

		entry := &model.ReviewEntry{
			EntityKind:      kind,
			EntityID:        entityID,
			Action:          model.ActionReject,
			Comment:         req.Comment,
			Actor:           actor,
			ResultingStatus: resultStatus,
		}
		return s.reviewRepo.Append(ctx, tx, entry)
	})

	if err != nil {
		return nil, err
	}

	s.notifyCreator(ctx, creator, kind, entityID, model.ActionReject, req.Comment)

	return &model.ReviewResultResponse{EntityID: entityID, Status: resultStatus}, nil
}

func (s *reviewService) ListReviews(ctx context.Context, kind model.EntityKind, entityID string) ([]*model.ReviewEntry, error) {
	if !kind.Valid() {
		return nil, model.ErrInvalidInput
	}

	// 存在しないエンティティの履歴要求 (404) と履歴ゼロ (200 + []) を区別する
	if _, err := s.findEntity(ctx, s.db, kind, entityID); err != nil {
		return nil, err
	}

	entries, err := s.reviewRepo.ListByEntity(ctx, s.db, kind, entityID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*model.ReviewEntry{}
	}
	return entries, nil
}

// notifyCreator はレビュー結果を作成者へメール通知します。
// 通知はベストエフォートで、失敗してもレビュー自体の結果には影響しません。
func (s *reviewService) notifyCreator(ctx context.Context, creator model.Actor, kind model.EntityKind, entityID string, action model.ReviewAction, comment string) {
	logger := middleware.GetLogger(ctx)

	if creator.ID == "" || creator.ID == model.UnknownActorID {
		return
	}
	userID, err := uuid.Parse(creator.ID)
	if err != nil {
		// 外部IDの作成者はプロフィールを持たないため通知できない
		return
	}
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Warn("Failed to look up creator for notification", "error", err, "creator_id", creator.ID)
		}
		return
	}

	var subject string
	switch action {
	case model.ActionApprove:
		subject = fmt.Sprintf("[%s] %s が承認されました", config.AppName, entityID)
	case model.ActionReject:
		subject = fmt.Sprintf("[%s] %s が却下されました", config.AppName, entityID)
	}
	body := fmt.Sprintf("対象: %s (%s)\nコメント: %s\n", entityID, kind, comment)

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		logger.Warn("Failed to send review notification",
			"error", err,
			"to", user.Email,
			"entity_id", entityID,
		)
	}
}

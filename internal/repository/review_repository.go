//go:generate mockery --name ReviewRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"

	"gorm.io/gorm"
)

// ReviewRepository は追記専用の監査ログを扱います。更新・削除のメソッドは持ちません。
type ReviewRepository interface {
	Append(ctx context.Context, tx *gorm.DB, entry *model.ReviewEntry) error
	ListByEntity(ctx context.Context, db *gorm.DB, kind model.EntityKind, entityID string) ([]*model.ReviewEntry, error)
	DeleteByEntity(ctx context.Context, tx *gorm.DB, kind model.EntityKind, entityID string) error
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) Append(ctx context.Context, tx *gorm.DB, entry *model.ReviewEntry) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(entry)
	if result.Error != nil {
		logger.Error("Error appending review entry in DB",
			"error", result.Error,
			"entity_kind", string(entry.EntityKind),
			"entity_id", entry.EntityID,
		)
		return fmt.Errorf("gormReviewRepository.Append: %w", result.Error)
	}
	return nil
}

// ListByEntity は新しい順に全履歴を返します。履歴なしは空スライスで、エラーではありません。
// エンティティ自体の存在確認は呼び出し側の責務です。
func (r *gormReviewRepository) ListByEntity(ctx context.Context, db *gorm.DB, kind model.EntityKind, entityID string) ([]*model.ReviewEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.ReviewEntry
	result := db.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", kind, entityID).
		Order("created_at DESC, id DESC").
		Find(&entries)
	if result.Error != nil {
		logger.Error("Error listing review entries in DB",
			"error", result.Error,
			"entity_kind", string(kind),
			"entity_id", entityID,
		)
		return nil, fmt.Errorf("gormReviewRepository.ListByEntity: %w", result.Error)
	}
	return entries, nil
}

// DeleteByEntity はエンティティ削除時のカスケード専用です。
// 監査ログは本体が存在する限り不変で、本体と運命を共にします。
func (r *gormReviewRepository) DeleteByEntity(ctx context.Context, tx *gorm.DB, kind model.EntityKind, entityID string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", kind, entityID).
		Delete(&model.ReviewEntry{})
	if result.Error != nil {
		logger.Error("Error deleting review entries in DB",
			"error", result.Error,
			"entity_kind", string(kind),
			"entity_id", entityID,
		)
		return fmt.Errorf("gormReviewRepository.DeleteByEntity: %w", result.Error)
	}
	return nil
}

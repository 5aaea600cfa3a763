//go:generate mockery --name QuarterRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type QuarterRepository interface {
	Create(ctx context.Context, tx *gorm.DB, quarter *model.Quarter) error
	FindByID(ctx context.Context, db *gorm.DB, quarterID string) (*model.Quarter, error)
	List(ctx context.Context, db *gorm.DB, status *model.Status) ([]*model.Quarter, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	NumberExists(ctx context.Context, db *gorm.DB, number int) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, quarterID string, updates map[string]interface{}) error
	// TransitionStatus は status=from の行に限って status を to に更新します。
	// 影響行数 0 は並行する別リクエストが先に遷移させたことを意味します。
	TransitionStatus(ctx context.Context, tx *gorm.DB, quarterID string, from, to model.Status, approvedAt *time.Time) (int64, error)
	ForceStatus(ctx context.Context, tx *gorm.DB, quarterID string, to model.Status, approvedAt *time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, quarterID string) error
}

type gormQuarterRepository struct{}

func NewGormQuarterRepository() QuarterRepository {
	return &gormQuarterRepository{}
}

func (r *gormQuarterRepository) Create(ctx context.Context, tx *gorm.DB, quarter *model.Quarter) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(quarter)
	if result.Error != nil {
		// number の一意インデックス違反は同時作成の敗者。Conflict として返す。
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating quarter in DB",
			"error", result.Error,
			"quarter_id", quarter.QuarterID,
		)
		return fmt.Errorf("gormQuarterRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuarterRepository) FindByID(ctx context.Context, db *gorm.DB, quarterID string) (*model.Quarter, error) {
	logger := middleware.GetLogger(ctx)
	var quarter model.Quarter
	result := db.WithContext(ctx).Where("quarter_id = ?", quarterID).First(&quarter)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding quarter by ID in DB",
			"error", result.Error,
			"quarter_id", quarterID,
		)
		return nil, fmt.Errorf("gormQuarterRepository.FindByID: %w", result.Error)
	}
	return &quarter, nil
}

func (r *gormQuarterRepository) List(ctx context.Context, db *gorm.DB, status *model.Status) ([]*model.Quarter, error) {
	logger := middleware.GetLogger(ctx)
	var quarters []*model.Quarter
	query := db.WithContext(ctx).Order("number ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	result := query.Find(&quarters)
	if result.Error != nil {
		logger.Error("Error listing quarters in DB", "error", result.Error)
		return nil, fmt.Errorf("gormQuarterRepository.List: %w", result.Error)
	}
	return quarters, nil
}

func (r *gormQuarterRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Quarter{}).Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting quarters in DB", "error", result.Error)
		return 0, fmt.Errorf("gormQuarterRepository.Count: %w", result.Error)
	}
	return count, nil
}

func (r *gormQuarterRepository) NumberExists(ctx context.Context, db *gorm.DB, number int) (bool, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Quarter{}).Where("number = ?", number).Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error checking quarter number in DB",
			"error", result.Error,
			"number", number,
		)
		return false, fmt.Errorf("gormQuarterRepository.NumberExists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormQuarterRepository) Update(ctx context.Context, tx *gorm.DB, quarterID string, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Quarter{}).Where("quarter_id = ?", quarterID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating quarter in DB",
			"error", result.Error,
			"quarter_id", quarterID,
		)
		return fmt.Errorf("gormQuarterRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormQuarterRepository) TransitionStatus(ctx context.Context, tx *gorm.DB, quarterID string, from, to model.Status, approvedAt *time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{"status": to}
	if approvedAt != nil {
		updates["approved_at"] = approvedAt
	}
	result := tx.WithContext(ctx).Model(&model.Quarter{}).
		Where("quarter_id = ? AND status = ?", quarterID, from).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error transitioning quarter status in DB",
			"error", result.Error,
			"quarter_id", quarterID,
		)
		return 0, fmt.Errorf("gormQuarterRepository.TransitionStatus: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ForceStatus は現在の状態に関係なく status を上書きします。
// 承認ゲートが無効化された種別の後方互換エンドポイント用です。
func (r *gormQuarterRepository) ForceStatus(ctx context.Context, tx *gorm.DB, quarterID string, to model.Status, approvedAt *time.Time) error {
	updates := map[string]interface{}{"status": to}
	if approvedAt != nil {
		updates["approved_at"] = approvedAt
	}
	result := tx.WithContext(ctx).Model(&model.Quarter{}).Where("quarter_id = ?", quarterID).Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error forcing quarter status in DB",
			"error", result.Error,
			"quarter_id", quarterID,
		)
		return fmt.Errorf("gormQuarterRepository.ForceStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormQuarterRepository) Delete(ctx context.Context, tx *gorm.DB, quarterID string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("quarter_id = ?", quarterID).Delete(&model.Quarter{})
	if result.Error != nil {
		logger.Error("Error deleting quarter in DB",
			"error", result.Error,
			"quarter_id", quarterID,
		)
		return fmt.Errorf("gormQuarterRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

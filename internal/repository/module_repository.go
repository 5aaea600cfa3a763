//go:generate mockery --name ModuleRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"

	"gorm.io/gorm"
)

type ModuleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, module *model.Module) error
	FindByID(ctx context.Context, db *gorm.DB, moduleID string) (*model.Module, error)
	// ListByQuarter は正準カラムとレガシーカラムの両方を親参照として引き、
	// module_id をキーに結果を和集合します (先勝ち)。
	ListByQuarter(ctx context.Context, db *gorm.DB, quarterID string, status *model.Status) ([]*model.Module, error)
	List(ctx context.Context, db *gorm.DB, status *model.Status) ([]*model.Module, error)
	CountByQuarter(ctx context.Context, db *gorm.DB, quarterID string) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, moduleID string, updates map[string]interface{}) error
	TransitionStatus(ctx context.Context, tx *gorm.DB, moduleID string, from, to model.Status, approvedAt *time.Time) (int64, error)
	ForceStatus(ctx context.Context, tx *gorm.DB, moduleID string, to model.Status, approvedAt *time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, moduleID string) error
}

type gormModuleRepository struct{}

func NewGormModuleRepository() ModuleRepository {
	return &gormModuleRepository{}
}

func (r *gormModuleRepository) Create(ctx context.Context, tx *gorm.DB, module *model.Module) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(module)
	if result.Error != nil {
		logger.Error("Error creating module in DB",
			"error", result.Error,
			"module_id", module.ModuleID,
			"quarter_id", module.QuarterID,
		)
		return fmt.Errorf("gormModuleRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormModuleRepository) FindByID(ctx context.Context, db *gorm.DB, moduleID string) (*model.Module, error) {
	logger := middleware.GetLogger(ctx)
	var module model.Module
	result := db.WithContext(ctx).Where("module_id = ?", moduleID).First(&module)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding module by ID in DB",
			"error", result.Error,
			"module_id", moduleID,
		)
		return nil, fmt.Errorf("gormModuleRepository.FindByID: %w", result.Error)
	}
	return &module, nil
}

func (r *gormModuleRepository) ListByQuarter(ctx context.Context, db *gorm.DB, quarterID string, status *model.Status) ([]*model.Module, error) {
	logger := middleware.GetLogger(ctx)

	// 正準カラムで1回、レガシーカラムで1回クエリし、IDで和集合を取る。
	// 同一IDが両方に現れた場合は先に見つかった方を採用する。
	canonical, err := r.findWhere(ctx, db, "quarter_id = ?", quarterID, status)
	if err != nil {
		logger.Error("Error listing modules by canonical quarter ref", "error", err, "quarter_id", quarterID)
		return nil, fmt.Errorf("gormModuleRepository.ListByQuarter: %w", err)
	}
	legacy, err := r.findWhere(ctx, db, `"quarterId" = ?`, quarterID, status)
	if err != nil {
		logger.Error("Error listing modules by legacy quarter ref", "error", err, "quarter_id", quarterID)
		return nil, fmt.Errorf("gormModuleRepository.ListByQuarter: %w", err)
	}

	seen := make(map[string]bool, len(canonical))
	merged := make([]*model.Module, 0, len(canonical)+len(legacy))
	for _, m := range canonical {
		seen[m.ModuleID] = true
		merged = append(merged, m)
	}
	for _, m := range legacy {
		if !seen[m.ModuleID] {
			seen[m.ModuleID] = true
			merged = append(merged, m)
		}
	}
	return merged, nil
}

func (r *gormModuleRepository) findWhere(ctx context.Context, db *gorm.DB, cond string, arg interface{}, status *model.Status) ([]*model.Module, error) {
	var modules []*model.Module
	query := db.WithContext(ctx).Where(cond, arg).Order("number ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *gormModuleRepository) List(ctx context.Context, db *gorm.DB, status *model.Status) ([]*model.Module, error) {
	logger := middleware.GetLogger(ctx)
	var modules []*model.Module
	query := db.WithContext(ctx).Order("quarter_number ASC, number ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	result := query.Find(&modules)
	if result.Error != nil {
		logger.Error("Error listing modules in DB", "error", result.Error)
		return nil, fmt.Errorf("gormModuleRepository.List: %w", result.Error)
	}
	return modules, nil
}

func (r *gormModuleRepository) CountByQuarter(ctx context.Context, db *gorm.DB, quarterID string) (int64, error) {
	// 件数も一覧と同じ二重クエリの和集合で数える
	modules, err := r.ListByQuarter(ctx, db, quarterID, nil)
	if err != nil {
		return 0, err
	}
	return int64(len(modules)), nil
}

func (r *gormModuleRepository) Update(ctx context.Context, tx *gorm.DB, moduleID string, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Module{}).Where("module_id = ?", moduleID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating module in DB",
			"error", result.Error,
			"module_id", moduleID,
		)
		return fmt.Errorf("gormModuleRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormModuleRepository) TransitionStatus(ctx context.Context, tx *gorm.DB, moduleID string, from, to model.Status, approvedAt *time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{"status": to}
	if approvedAt != nil {
		updates["approved_at"] = approvedAt
	}
	result := tx.WithContext(ctx).Model(&model.Module{}).
		Where("module_id = ? AND status = ?", moduleID, from).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error transitioning module status in DB",
			"error", result.Error,
			"module_id", moduleID,
		)
		return 0, fmt.Errorf("gormModuleRepository.TransitionStatus: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ForceStatus は現在の状態に関係なく status を上書きします。
// 承認ゲートが無効な種別の後方互換エンドポイント用です。
func (r *gormModuleRepository) ForceStatus(ctx context.Context, tx *gorm.DB, moduleID string, to model.Status, approvedAt *time.Time) error {
	updates := map[string]interface{}{"status": to}
	if approvedAt != nil {
		updates["approved_at"] = approvedAt
	}
	result := tx.WithContext(ctx).Model(&model.Module{}).Where("module_id = ?", moduleID).Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error forcing module status in DB",
			"error", result.Error,
			"module_id", moduleID,
		)
		return fmt.Errorf("gormModuleRepository.ForceStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormModuleRepository) Delete(ctx context.Context, tx *gorm.DB, moduleID string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("module_id = ?", moduleID).Delete(&model.Module{})
	if result.Error != nil {
		logger.Error("Error deleting module in DB",
			"error", result.Error,
			"module_id", moduleID,
		)
		return fmt.Errorf("gormModuleRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

//go:generate mockery --name LessonRepository --output ./mocks --outpkg mocks --case=underscore
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

type LessonRepository interface {
	Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error
	FindByID(ctx context.Context, db *gorm.DB, lessonID string) (*model.Lesson, error)
	ListByModule(ctx context.Context, db *gorm.DB, moduleID string, status *model.Status) ([]*model.Lesson, error)
	List(ctx context.Context, db *gorm.DB, status *model.Status) ([]*model.Lesson, error)
	Update(ctx context.Context, tx *gorm.DB, lessonID string, updates map[string]interface{}) error
	TransitionStatus(ctx context.Context, tx *gorm.DB, lessonID string, from, to model.Status, approvedAt *time.Time) (int64, error)
	ForceStatus(ctx context.Context, tx *gorm.DB, lessonID string, to model.Status, approvedAt *time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, lessonID string) error
}

type gormLessonRepository struct{}

func NewGormLessonRepository() LessonRepository {
	return &gormLessonRepository{}
}

func (r *gormLessonRepository) Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(lesson)
	if result.Error != nil {
		logger.Error("Error creating lesson in DB",
			"error", result.Error,
			"lesson_id", lesson.LessonID,
			"module_id", lesson.ModuleID,
		)
		return fmt.Errorf("gormLessonRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormLessonRepository) FindByID(ctx context.Context, db *gorm.DB, lessonID string) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lesson model.Lesson
	result := db.WithContext(ctx).Where("lesson_id = ?", lessonID).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lesson by ID in DB",
			"error", result.Error,
			"lesson_id", lessonID,
		)
		return nil, fmt.Errorf("gormLessonRepository.FindByID: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) ListByModule(ctx context.Context, db *gorm.DB, moduleID string, status *model.Status) ([]*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lessons []*model.Lesson
	query := db.WithContext(ctx).Where("module_id = ?", moduleID).Order("number ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	result := query.Find(&lessons)
	if result.Error != nil {
		logger.Error("Error listing lessons by module in DB",
			"error", result.Error,
			"module_id", moduleID,
		)
		return nil, fmt.Errorf("gormLessonRepository.ListByModule: %w", result.Error)
	}
	return lessons, nil
}

func (r *gormLessonRepository) List(ctx context.Context, db *gorm.DB, status *model.Status) ([]*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lessons []*model.Lesson
	query := db.WithContext(ctx).Order("quarter_number ASC, module_number ASC, number ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	result := query.Find(&lessons)
	if result.Error != nil {
		logger.Error("Error listing lessons in DB", "error", result.Error)
		return nil, fmt.Errorf("gormLessonRepository.List: %w", result.Error)
	}
	return lessons, nil
}

func (r *gormLessonRepository) Update(ctx context.Context, tx *gorm.DB, lessonID string, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Lesson{}).Where("lesson_id = ?", lessonID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating lesson in DB",
			"error", result.Error,
			"lesson_id", lessonID,
		)
		return fmt.Errorf("gormLessonRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLessonRepository) TransitionStatus(ctx context.Context, tx *gorm.DB, lessonID string, from, to model.Status, approvedAt *time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{"status": to}
	if approvedAt != nil {
		updates["approved_at"] = approvedAt
	}
	result := tx.WithContext(ctx).Model(&model.Lesson{}).
		Where("lesson_id = ? AND status = ?", lessonID, from).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error transitioning lesson status in DB",
			"error", result.Error,
			"lesson_id", lessonID,
		)
		return 0, fmt.Errorf("gormLessonRepository.TransitionStatus: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormLessonRepository) ForceStatus(ctx context.Context, tx *gorm.DB, lessonID string, to model.Status, approvedAt *time.Time) error {
	updates := map[string]interface{}{"status": to}
	if approvedAt != nil {
		updates["approved_at"] = approvedAt
	}
	result := tx.WithContext(ctx).Model(&model.Lesson{}).Where("lesson_id = ?", lessonID).Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error forcing lesson status in DB",
			"error", result.Error,
			"lesson_id", lessonID,
		)
		return fmt.Errorf("gormLessonRepository.ForceStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLessonRepository) Delete(ctx context.Context, tx *gorm.DB, lessonID string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("lesson_id = ?", lessonID).Delete(&model.Lesson{})
	if result.Error != nil {
		logger.Error("Error deleting lesson in DB",
			"error", result.Error,
			"lesson_id", lessonID,
		)
		return fmt.Errorf("gormLessonRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

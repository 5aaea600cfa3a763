//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository は実行者メタデータのフォールバック解決に使うプロフィール参照です
type UserRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

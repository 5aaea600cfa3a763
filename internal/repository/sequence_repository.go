//go:generate mockery --name SequenceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"curriculum_keep/internal/middleware"

	"gorm.io/gorm"
)

// SequenceRepository は親スコープごとの連番を払い出します。
// 兄弟走査による max+1 は並行作成で番号が重複するため、
// 1クエリの upsert でカウンタ行を加算する方式に置き換えています (postgres / sqlite 両対応)。
type SequenceRepository interface {
	Next(ctx context.Context, tx *gorm.DB, scope string) (int, error)
	Seed(ctx context.Context, tx *gorm.DB, scope string, floor int) error
}

type gormSequenceRepository struct{}

func NewGormSequenceRepository() SequenceRepository {
	return &gormSequenceRepository{}
}

func (r *gormSequenceRepository) Next(ctx context.Context, tx *gorm.DB, scope string) (int, error) {
	logger := middleware.GetLogger(ctx)
	var value int
	result := tx.WithContext(ctx).Raw(
		`INSERT INTO sequences (scope, value) VALUES (?, 1)
		 ON CONFLICT (scope) DO UPDATE SET value = sequences.value + 1
		 RETURNING value`,
		scope,
	).Scan(&value)
	if result.Error != nil {
		logger.Error("Error allocating next sequence",
			"error", result.Error,
			"scope", scope,
		)
		return 0, fmt.Errorf("gormSequenceRepository.Next: %w", result.Error)
	}
	return value, nil
}

// Seed はカウンタが floor 未満であれば floor まで引き上げます。
// レガシーデータ移行時に既存の最大番号から採番を再開させるために使います。
func (r *gormSequenceRepository) Seed(ctx context.Context, tx *gorm.DB, scope string, floor int) error {
	if err := seedSequence(tx.WithContext(ctx), scope, floor); err != nil {
		middleware.GetLogger(ctx).Error("Error seeding sequence",
			"error", err,
			"scope", scope,
		)
		return fmt.Errorf("gormSequenceRepository.Seed: %w", err)
	}
	return nil
}

func seedSequence(db *gorm.DB, scope string, floor int) error {
	return db.Exec(
		`INSERT INTO sequences (scope, value) VALUES (?, ?)
		 ON CONFLICT (scope) DO UPDATE SET value = CASE
		   WHEN sequences.value < excluded.value THEN excluded.value
		   ELSE sequences.value
		 END`,
		scope, floor,
	).Error
}

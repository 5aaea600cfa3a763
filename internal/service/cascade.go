// internal/service/cascade.go
package service

import (
	"context"

	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"
	"curriculum_keep/internal/repository"

	"gorm.io/gorm"
)

// カスケード削除はベストエフォートです。親は先に確実に消し、子孫は1件ずつ
// 小さなトランザクションで消していきます。途中で失敗しても中断せず、
// 失敗件数をサマリに計上して残りを続行します (親は既に消えているため、
// 中断しても孤児が残るだけで利益がない)。

// cascadeDeleteLessons は指定モジュール配下のレッスンと、その監査ログを削除します
func cascadeDeleteLessons(ctx context.Context, db *gorm.DB, lessonRepo repository.LessonRepository, reviewRepo repository.ReviewRepository, moduleID string, summary *model.CascadeSummary) {
	logger := middleware.GetLogger(ctx)

	lessons, err := lessonRepo.ListByModule(ctx, db, moduleID, nil)
	if err != nil {
		logger.Error("Failed to enumerate lessons for cascade deletion",
			"error", err,
			"module_id", moduleID,
		)
		summary.Failed++
		return
	}

	for _, lesson := range lessons {
		lessonID := lesson.LessonID
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := lessonRepo.Delete(ctx, tx, lessonID); err != nil {
				return err
			}
			return reviewRepo.DeleteByEntity(ctx, tx, model.KindLesson, lessonID)
		})
		if err != nil {
			logger.Error("Failed to cascade-delete lesson",
				"error", err,
				"lesson_id", lessonID,
				"module_id", moduleID,
			)
			summary.Failed++
			continue
		}
		summary.LessonsDeleted++
	}
}

// cascadeDeleteModule はモジュール本体・監査ログ・配下レッスンを削除します。
// モジュール本体を先に消してからレッスンに降りるため、親参照の残骸は発生しません。
func cascadeDeleteModule(ctx context.Context, db *gorm.DB, moduleRepo repository.ModuleRepository, lessonRepo repository.LessonRepository, reviewRepo repository.ReviewRepository, moduleID string, summary *model.CascadeSummary) {
	logger := middleware.GetLogger(ctx)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := moduleRepo.Delete(ctx, tx, moduleID); err != nil {
			return err
		}
		return reviewRepo.DeleteByEntity(ctx, tx, model.KindModule, moduleID)
	})
	if err != nil {
		logger.Error("Failed to cascade-delete module",
			"error", err,
			"module_id", moduleID,
		)
		summary.Failed++
		// モジュールが消せなくても配下レッスンの掃除は試みる
	} else {
		summary.ModulesDeleted++
	}

	cascadeDeleteLessons(ctx, db, lessonRepo, reviewRepo, moduleID, summary)
}

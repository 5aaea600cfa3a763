// internal/service/lesson_service_test.go
package service

import (
	"context"
	"testing"

	"curriculum_keep/internal/model"
	"curriculum_keep/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLessonServiceForTest(mr *mocks.ModuleRepository, lr *mocks.LessonRepository, rr *mocks.ReviewRepository, sr *mocks.SequenceRepository) LessonService {
	db := setupTestDB()
	resolver := NewActorResolver(db, new(mocks.UserRepository))
	return NewLessonService(db, gatedConfig("quarter"), mr, lr, rr, sr, resolver)
}

func Test_lessonService_CreateLesson(t *testing.T) {
	ctx := context.Background()

	parent := &model.Module{
		ModuleID:      "module_q1_02",
		Title:         "分数の加減",
		Number:        2,
		QuarterID:     "quarter_01",
		QuarterNumber: 1,
		Status:        model.StatusApproved,
	}

	t.Run("正常系: IDと番号は親モジュールから引き写される", func(t *testing.T) {
		mr := new(mocks.ModuleRepository)
		lr := new(mocks.LessonRepository)
		sr := new(mocks.SequenceRepository)
		svc := newLessonServiceForTest(mr, lr, new(mocks.ReviewRepository), sr)

		contents := []model.ContentBlock{
			{Kind: model.BlockText, Text: "導入"},
			{Kind: model.BlockList, Items: []string{"例1", "例2"}},
		}

		mr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "module_q1_02").Return(parent, nil).Once()
		sr.On("Next", ctx, mock.AnythingOfType("*gorm.DB"), "lesson:module_q1_02").Return(1, nil).Once()
		lr.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Lesson")).
			Run(func(args mock.Arguments) {
				l := args.Get(2).(*model.Lesson)
				assert.Equal(t, "lesson_q1_m2_01", l.LessonID)
				assert.Equal(t, 1, l.QuarterNumber)
				assert.Equal(t, 2, l.ModuleNumber)
				assert.Equal(t, 1, l.Number)
				assert.Len(t, l.Contents, 2)
				assert.Equal(t, model.StatusApproved, l.Status)
			}).Return(nil).Once()

		lesson, err := svc.CreateLesson(ctx, &model.PostLessonRequest{
			Title:    "帯分数",
			Topic:    "fractions",
			ModuleID: "module_q1_02",
			Contents: contents,
			Actor:    &testActor,
		})

		require.NoError(t, err)
		assert.Equal(t, "lesson_q1_m2_01", lesson.LessonID)
		mr.AssertExpectations(t)
		lr.AssertExpectations(t)
		sr.AssertExpectations(t)
	})

	t.Run("異常系: 親モジュールが存在しない", func(t *testing.T) {
		mr := new(mocks.ModuleRepository)
		lr := new(mocks.LessonRepository)
		sr := new(mocks.SequenceRepository)
		svc := newLessonServiceForTest(mr, lr, new(mocks.ReviewRepository), sr)

		mr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "module_q9_99").Return(nil, model.ErrNotFound).Once()

		lesson, err := svc.CreateLesson(ctx, &model.PostLessonRequest{
			Title: "迷子", Topic: "none", ModuleID: "module_q9_99", Actor: &testActor,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, lesson)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "PARENT_NOT_FOUND", appErr.Detail.Code)

		sr.AssertNotCalled(t, "Next", mock.Anything, mock.Anything, mock.Anything)
		lr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_lessonService_UpdateLesson(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: contentsは全体置き換え", func(t *testing.T) {
		lr := new(mocks.LessonRepository)
		svc := newLessonServiceForTest(new(mocks.ModuleRepository), lr, new(mocks.ReviewRepository), new(mocks.SequenceRepository))

		newContents := []model.ContentBlock{{Kind: model.BlockText, Text: "改訂版"}}
		after := &model.Lesson{LessonID: "lesson_q1_m2_01", Contents: model.ContentBlocks(newContents)}

		lr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "lesson_q1_m2_01").
			Return(&model.Lesson{LessonID: "lesson_q1_m2_01"}, nil).Once()
		lr.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), "lesson_q1_m2_01",
			map[string]interface{}{"contents": model.ContentBlocks(newContents)}).Return(nil).Once()
		lr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "lesson_q1_m2_01").Return(after, nil).Once()

		got, err := svc.UpdateLesson(ctx, "lesson_q1_m2_01", &model.PatchLessonRequest{Contents: &newContents})

		require.NoError(t, err)
		require.Len(t, got.Contents, 1)
		assert.Equal(t, "改訂版", got.Contents[0].Text)
		lr.AssertExpectations(t)
	})
}

func Test_lessonService_DeleteLesson(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 本体と監査ログを同一トランザクションで削除", func(t *testing.T) {
		lr := new(mocks.LessonRepository)
		rr := new(mocks.ReviewRepository)
		svc := newLessonServiceForTest(new(mocks.ModuleRepository), lr, rr, new(mocks.SequenceRepository))

		lr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "lesson_q1_m2_01").
			Return(&model.Lesson{LessonID: "lesson_q1_m2_01"}, nil).Once()
		lr.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), "lesson_q1_m2_01").Return(nil).Once()
		rr.On("DeleteByEntity", ctx, mock.AnythingOfType("*gorm.DB"), model.KindLesson, "lesson_q1_m2_01").Return(nil).Once()

		err := svc.DeleteLesson(ctx, "lesson_q1_m2_01")

		require.NoError(t, err)
		lr.AssertExpectations(t)
		rr.AssertExpectations(t)
	})

	t.Run("異常系: 対象が存在しない", func(t *testing.T) {
		lr := new(mocks.LessonRepository)
		svc := newLessonServiceForTest(new(mocks.ModuleRepository), lr, new(mocks.ReviewRepository), new(mocks.SequenceRepository))

		lr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "lesson_q9_m9_99").Return(nil, model.ErrNotFound).Once()

		err := svc.DeleteLesson(ctx, "lesson_q9_m9_99")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

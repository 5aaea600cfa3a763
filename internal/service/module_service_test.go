// internal/service/module_service_test.go
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

func newModuleServiceForTest(qr *mocks.QuarterRepository, mr *mocks.ModuleRepository, lr *mocks.LessonRepository, rr *mocks.ReviewRepository, sr *mocks.SequenceRepository) ModuleService {
	db := setupTestDB()
	resolver := NewActorResolver(db, new(mocks.UserRepository))
	return NewModuleService(db, gatedConfig("quarter"), qr, mr, lr, rr, sr, resolver)
}

func Test_moduleService_CreateModule(t *testing.T) {
	ctx := context.Background()

	parent := &model.Quarter{QuarterID: "quarter_01", Name: "Q1", Number: 1, Status: model.StatusApproved}

	tests := []struct {
		name      string
		req       *model.PostModuleRequest
		setupMock func(qr *mocks.QuarterRepository, mr *mocks.ModuleRepository, sr *mocks.SequenceRepository)
		wantErr   error
		wantID    string
		wantNum   int
	}{
		{
			name: "正常系: 最初のモジュールは連番1",
			req:  &model.PostModuleRequest{Title: "分数の導入", Topic: "fractions", QuarterID: "quarter_01", Actor: &testActor},
			setupMock: func(qr *mocks.QuarterRepository, mr *mocks.ModuleRepository, sr *mocks.SequenceRepository) {
				qr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "quarter_01").Return(parent, nil).Once()
				sr.On("Next", ctx, mock.AnythingOfType("*gorm.DB"), "module:quarter_01").Return(1, nil).Once()
				mr.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Module")).
					Run(func(args mock.Arguments) {
						m := args.Get(2).(*model.Module)
						assert.Equal(t, "module_q1_01", m.ModuleID)
						assert.Equal(t, 1, m.Number)
						assert.Equal(t, 1, m.QuarterNumber)
						assert.Equal(t, "quarter_01", m.QuarterID)
						// モジュールは承認ゲート対象外なので作成時点で approved
						assert.Equal(t, model.StatusApproved, m.Status)
						assert.NotNil(t, m.ApprovedAt)
					}).Return(nil).Once()
			},
			wantID:  "module_q1_01",
			wantNum: 1,
		},
		{
			name: "正常系: 2件目は連番2が払い出される",
			req:  &model.PostModuleRequest{Title: "分数の加減", Topic: "fractions", QuarterID: "quarter_01", Actor: &testActor},
			setupMock: func(qr *mocks.QuarterRepository, mr *mocks.ModuleRepository, sr *mocks.SequenceRepository) {
				qr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "quarter_01").Return(parent, nil).Once()
				sr.On("Next", ctx, mock.AnythingOfType("*gorm.DB"), "module:quarter_01").Return(2, nil).Once()
				mr.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Module")).Return(nil).Once()
			},
			wantID:  "module_q1_02",
			wantNum: 2,
		},
		{
			name: "異常系: 親クォーターが存在しない場合は何も書き込まない",
			req:  &model.PostModuleRequest{Title: "迷子", Topic: "none", QuarterID: "quarter_99", Actor: &testActor},
			setupMock: func(qr *mocks.QuarterRepository, mr *mocks.ModuleRepository, sr *mocks.SequenceRepository) {
				qr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "quarter_99").Return(nil, model.ErrNotFound).Once()
				// Next / Create は呼ばれない
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qr := new(mocks.QuarterRepository)
			mr := new(mocks.ModuleRepository)
			sr := new(mocks.SequenceRepository)
			svc := newModuleServiceForTest(qr, mr, new(mocks.LessonRepository), new(mocks.ReviewRepository), sr)

			tt.setupMock(qr, mr, sr)

			module, err := svc.CreateModule(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, module)
			} else {
				require.NoError(t, err)
				require.NotNil(t, module)
				assert.Equal(t, tt.wantID, module.ModuleID)
				assert.Equal(t, tt.wantNum, module.Number)
			}

			qr.AssertExpectations(t)
			mr.AssertExpectations(t)
			sr.AssertExpectations(t)
		})
	}
}

func Test_moduleService_UpdateModule(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 指定フィールドだけ更新される", func(t *testing.T) {
		mr := new(mocks.ModuleRepository)
		svc := newModuleServiceForTest(new(mocks.QuarterRepository), mr, new(mocks.LessonRepository), new(mocks.ReviewRepository), new(mocks.SequenceRepository))

		before := &model.Module{ModuleID: "module_q1_01", Title: "旧タイトル", Topic: "fractions"}
		after := &model.Module{ModuleID: "module_q1_01", Title: "新タイトル", Topic: "fractions"}
		newTitle := "新タイトル"

		mr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "module_q1_01").Return(before, nil).Once()
		mr.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), "module_q1_01",
			map[string]interface{}{"title": "新タイトル"}).Return(nil).Once()
		mr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "module_q1_01").Return(after, nil).Once()

		got, err := svc.UpdateModule(ctx, "module_q1_01", &model.PatchModuleRequest{Title: &newTitle})

		require.NoError(t, err)
		assert.Equal(t, "新タイトル", got.Title)
		assert.Equal(t, "fractions", got.Topic)
		mr.AssertExpectations(t)
	})

	t.Run("異常系: 対象が存在しない", func(t *testing.T) {
		mr := new(mocks.ModuleRepository)
		svc := newModuleServiceForTest(new(mocks.QuarterRepository), mr, new(mocks.LessonRepository), new(mocks.ReviewRepository), new(mocks.SequenceRepository))

		mr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "module_q9_99").Return(nil, model.ErrNotFound).Once()

		newTitle := "更新"
		got, err := svc.UpdateModule(ctx, "module_q9_99", &model.PatchModuleRequest{Title: &newTitle})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, got)
	})
}

func Test_moduleService_DeleteModule(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 配下レッスンごと削除してサマリを返す", func(t *testing.T) {
		mr := new(mocks.ModuleRepository)
		lr := new(mocks.LessonRepository)
		rr := new(mocks.ReviewRepository)
		svc := newModuleServiceForTest(new(mocks.QuarterRepository), mr, lr, rr, new(mocks.SequenceRepository))

		lessons := []*model.Lesson{
			{LessonID: "lesson_q1_m1_01", ModuleID: "module_q1_01"},
			{LessonID: "lesson_q1_m1_02", ModuleID: "module_q1_01"},
		}

		mr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "module_q1_01").
			Return(&model.Module{ModuleID: "module_q1_01"}, nil).Once()
		mr.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), "module_q1_01").Return(nil).Once()
		rr.On("DeleteByEntity", ctx, mock.AnythingOfType("*gorm.DB"), model.KindModule, "module_q1_01").Return(nil).Once()
		lr.On("ListByModule", ctx, mock.AnythingOfType("*gorm.DB"), "module_q1_01", (*model.Status)(nil)).Return(lessons, nil).Once()
		for _, l := range lessons {
			lr.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), l.LessonID).Return(nil).Once()
			rr.On("DeleteByEntity", ctx, mock.AnythingOfType("*gorm.DB"), model.KindLesson, l.LessonID).Return(nil).Once()
		}

		summary, err := svc.DeleteModule(ctx, "module_q1_01")

		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.ModulesDeleted)
		assert.Equal(t, int64(2), summary.LessonsDeleted)
		assert.Equal(t, int64(0), summary.Failed)
		mr.AssertExpectations(t)
		lr.AssertExpectations(t)
		rr.AssertExpectations(t)
	})

	t.Run("異常系: 対象が存在しない", func(t *testing.T) {
		mr := new(mocks.ModuleRepository)
		svc := newModuleServiceForTest(new(mocks.QuarterRepository), mr, new(mocks.LessonRepository), new(mocks.ReviewRepository), new(mocks.SequenceRepository))

		mr.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "module_q9_99").Return(nil, model.ErrNotFound).Once()

		summary, err := svc.DeleteModule(ctx, "module_q9_99")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, summary)
	})
}

func Test_moduleService_ListModules(t *testing.T) {
	ctx := context.Background()

	t.Run("quarter_id指定時はレガシー参照込みの一覧を使う", func(t *testing.T) {
		mr := new(mocks.ModuleRepository)
		svc := newModuleServiceForTest(new(mocks.QuarterRepository), mr, new(mocks.LessonRepository), new(mocks.ReviewRepository), new(mocks.SequenceRepository))

		modules := []*model.Module{{ModuleID: "module_q1_01"}}
		mr.On("ListByQuarter", ctx, mock.AnythingOfType("*gorm.DB"), "quarter_01", (*model.Status)(nil)).Return(modules, nil).Once()

		got, err := svc.ListModules(ctx, "quarter_01", nil)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		mr.AssertExpectations(t)
	})

	t.Run("quarter_id未指定時は全件", func(t *testing.T) {
		mr := new(mocks.ModuleRepository)
		svc := newModuleServiceForTest(new(mocks.QuarterRepository), mr, new(mocks.LessonRepository), new(mocks.ReviewRepository), new(mocks.SequenceRepository))

		mr.On("List", ctx, mock.AnythingOfType("*gorm.DB"), (*model.Status)(nil)).Return([]*model.Module{}, nil).Once()

		got, err := svc.ListModules(ctx, "", nil)

		require.NoError(t, err)
		assert.Empty(t, got)
		mr.AssertExpectations(t)
	})
}

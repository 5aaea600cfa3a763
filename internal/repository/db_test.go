// internal/repository/db_test.go
package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"curriculum_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLegacyRefs(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	appLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, db.Create(&model.Quarter{
		QuarterID: "quarter_01", Name: "Q1", Number: 1, Status: model.StatusApproved,
	}).Error)

	// レガシーカラムだけに親参照を持つ移行データ
	require.NoError(t, db.Create(&model.Module{
		ModuleID: "module_q1_01", Title: "移行データ", Number: 1,
		LegacyQuarterID: legacyRef("quarter_01"), Status: model.StatusApproved,
	}).Error)
	require.NoError(t, db.Create(&model.Module{
		ModuleID: "module_q1_07", Title: "番号が飛んだ移行データ", Number: 7,
		LegacyQuarterID: legacyRef("quarter_01"), Status: model.StatusApproved,
	}).Error)
	// 正準カラムを既に持つ行は書き換えない
	canonical := "quarter_01"
	require.NoError(t, db.Create(&model.Module{
		ModuleID: "module_q1_03", Title: "正規化済み", Number: 3,
		QuarterID: canonical, Status: model.StatusApproved,
	}).Error)

	require.NoError(t, NormalizeLegacyRefs(db, appLogger))

	t.Run("レガシー参照が正準カラムへ寄せられる", func(t *testing.T) {
		var m model.Module
		require.NoError(t, db.Where("module_id = ?", "module_q1_01").First(&m).Error)
		assert.Equal(t, "quarter_01", m.QuarterID)
	})

	t.Run("採番カウンタは既存の最大番号からシードされる", func(t *testing.T) {
		// 既存の最大は 7。次の払い出しは 8 で、既存IDと衝突しない。
		seqRepo := NewGormSequenceRepository()
		next, err := seqRepo.Next(ctx, db, model.ModuleSequenceScope("quarter_01"))
		require.NoError(t, err)
		assert.Equal(t, 8, next)
	})

	t.Run("再実行しても結果が変わらない", func(t *testing.T) {
		require.NoError(t, NormalizeLegacyRefs(db, appLogger))

		var count int64
		require.NoError(t, db.Model(&model.Module{}).Where("quarter_id = ?", "quarter_01").Count(&count).Error)
		assert.Equal(t, int64(3), count)
	})
}

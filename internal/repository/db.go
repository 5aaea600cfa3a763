// internal/repository/db.go
package repository

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"curriculum_keep/internal/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB はGORMのDB接続を初期化します
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: finalGormLogger,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	// コネクションプールの設定
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")

	return db, nil
}

// Migrate はスキーマのマイグレーションとレガシーデータの正規化を行います。
// 起動時に一度だけ呼ばれます。
func Migrate(db *gorm.DB, appLogger *slog.Logger) error {
	err := db.AutoMigrate(
		&model.Quarter{},
		&model.Module{},
		&model.Lesson{},
		&model.ReviewEntry{},
		&model.Sequence{},
		&model.User{},
	)
	if err != nil {
		appLogger.Error("AutoMigrate failed", slog.Any("error", err))
		return err
	}

	if err := NormalizeLegacyRefs(db, appLogger); err != nil {
		return err
	}

	appLogger.Info("Database migration completed")
	return nil
}

// NormalizeLegacyRefs は旧ストア由来の別名親参照カラム (quarterId) を
// 正準カラム (quarter_id) へ一度だけ寄せ、既存データの最大番号から
// 採番カウンタをシードします。
// 一覧・カスケード側の二重クエリは正規化が済んでいない行への保険として残っています。
func NormalizeLegacyRefs(db *gorm.DB, appLogger *slog.Logger) error {
	res := db.Exec(`UPDATE modules SET quarter_id = "quarterId" WHERE (quarter_id IS NULL OR quarter_id = '') AND "quarterId" IS NOT NULL`)
	if res.Error != nil {
		appLogger.Error("Failed to normalize legacy quarter refs", slog.Any("error", res.Error))
		return res.Error
	}
	if res.RowsAffected > 0 {
		appLogger.Info("Normalized legacy quarter refs", slog.Int64("rows", res.RowsAffected))
	}

	// 採番カウンタをシード: 各クォーター配下のモジュール最大番号、
	// 各モジュール配下のレッスン最大番号をカウンタの下限にする
	var quarters []model.Quarter
	if err := db.Find(&quarters).Error; err != nil {
		return err
	}
	for _, q := range quarters {
		var maxNumber int
		row := db.Model(&model.Module{}).
			Where(`quarter_id = ? OR "quarterId" = ?`, q.QuarterID, q.QuarterID).
			Select("COALESCE(MAX(number), 0)").
			Row()
		if err := row.Scan(&maxNumber); err != nil {
			return err
		}
		if maxNumber > 0 {
			if err := seedSequence(db, model.ModuleSequenceScope(q.QuarterID), maxNumber); err != nil {
				return err
			}
		}
	}

	var modules []model.Module
	if err := db.Find(&modules).Error; err != nil {
		return err
	}
	for _, m := range modules {
		var maxNumber int
		row := db.Model(&model.Lesson{}).
			Where("module_id = ?", m.ModuleID).
			Select("COALESCE(MAX(number), 0)").
			Row()
		if err := row.Scan(&maxNumber); err != nil {
			return err
		}
		if maxNumber > 0 {
			if err := seedSequence(db, model.LessonSequenceScope(m.ModuleID), maxNumber); err != nil {
				return err
			}
		}
	}

	return nil
}

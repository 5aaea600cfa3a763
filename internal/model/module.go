// internal/model/module.go
package model

import (
	"time"
)

// Module はクォーター配下の中位コンテナです。
// QuarterID が正準の親参照。LegacyQuarterID は旧ストアから移行したデータが
// 使っていた別名カラム (quarterId) で、起動時の正規化で QuarterID へ寄せられます。
// 正規化前のデータに備え、一覧とカスケードは両カラムを見ます。
type Module struct {
	ModuleID        string     `gorm:"primaryKey" json:"module_id"`
	Title           string     `gorm:"not null" json:"title"`
	Topic           string     `json:"topic,omitempty"`
	Number          int        `gorm:"not null" json:"number"`
	QuarterID       string     `gorm:"index" json:"quarter_id"`
	LegacyQuarterID *string    `gorm:"column:quarterId;index" json:"-"`
	QuarterNumber   int        `json:"quarter_number"`
	Status          Status     `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedBy       Actor      `gorm:"embedded;embeddedPrefix:created_by_" json:"created_by"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Module) TableName() string {
	return "modules"
}

// ParentQuarterID は正準参照を優先して親クォーターIDを返します
func (m *Module) ParentQuarterID() string {
	if m.QuarterID != "" {
		return m.QuarterID
	}
	if m.LegacyQuarterID != nil {
		return *m.LegacyQuarterID
	}
	return ""
}

// モジュール作成リクエストDTO
type PostModuleRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Topic     string `json:"topic" validate:"omitempty,max=200"`
	QuarterID string `json:"quarter_id" validate:"required"`
	Actor     *Actor `json:"actor,omitempty" validate:"omitempty"`
}

// モジュール更新（部分）リクエストDTO。指定されたフィールドだけ書き込みます。
type PatchModuleRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Topic *string `json:"topic,omitempty" validate:"omitempty,max=200"`
}

// internal/model/quarter.go
package model

import (
	"time"
)

// Quarter はカリキュラム階層の最上位コンテナです。
// number は 1〜4 でユーザーが指定し、全クォーターを通じて一意です。
// number の範囲制約と一意インデックスの組で「最大4件」の不変条件が担保されます。
type Quarter struct {
	QuarterID  string     `gorm:"primaryKey" json:"quarter_id"`
	Name       string     `gorm:"not null" json:"name"`
	Number     int        `gorm:"uniqueIndex;not null" json:"number"`
	Status     Status     `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedBy  Actor      `gorm:"embedded;embeddedPrefix:created_by_" json:"created_by"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Quarter) TableName() string {
	return "quarters"
}

// クォーター作成リクエストDTO
type PostQuarterRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Number int    `json:"number" validate:"required,min=1,max=4"`
	Actor  *Actor `json:"actor,omitempty" validate:"omitempty"`
}

// QuarterListItem は一覧レスポンス用に modules_count を付与したDTO
type QuarterListItem struct {
	*Quarter
	ModulesCount int64 `json:"modules_count"`
}

// CascadeSummary はカスケード削除の結果サマリです。
// 削除はベストエフォートで、失敗した子孫は failed に計上して処理を続行します。
type CascadeSummary struct {
	ModulesDeleted int64 `json:"modules_deleted"`
	LessonsDeleted int64 `json:"lessons_deleted"`
	Failed         int64 `json:"failed"`
}

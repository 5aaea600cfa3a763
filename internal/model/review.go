// internal/model/review.go
package model

import "time"

// ReviewEntry は承認・却下の監査レコードです。追記専用で、作成後は更新も削除もされません。
// 読み出しは作成日時の降順（新しい順）です。
type ReviewEntry struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	EntityKind      EntityKind   `gorm:"type:varchar(20);not null;index:idx_review_entity" json:"entity_kind"`
	EntityID        string       `gorm:"not null;index:idx_review_entity" json:"entity_id"`
	Action          ReviewAction `gorm:"type:varchar(20);not null" json:"action"`
	Comment         string       `gorm:"type:text" json:"comment,omitempty"`
	Actor           Actor        `gorm:"embedded;embeddedPrefix:actor_" json:"actor"`
	ResultingStatus Status       `gorm:"type:varchar(20);not null" json:"resulting_status"`
	CreatedAt       time.Time    `gorm:"index" json:"created_at"`
}

func (ReviewEntry) TableName() string {
	return "review_entries"
}

// 承認リクエストDTO。コメントは任意です。
type ApproveRequest struct {
	Comment string `json:"comment" validate:"omitempty,max=2000"`
	Actor   *Actor `json:"actor,omitempty" validate:"omitempty"`
}

// 却下リクエストDTO。コメントは必須で最低文字数があります。
type RejectRequest struct {
	Comment string `json:"comment" validate:"required,min=10,max=2000"`
	Actor   *Actor `json:"actor,omitempty" validate:"omitempty"`
}

// ReviewResultResponse は承認・却下成功時のレスポンス
type ReviewResultResponse struct {
	EntityID string `json:"entity_id"`
	Status   Status `json:"status"`
}

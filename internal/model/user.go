// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// User は実行者メタデータのフォールバック解決に使うプロフィールレコードです。
// アカウント管理そのものは外部コラボレータの責務で、本サービスは参照のみ行います。
type User struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Role      string    `gorm:"type:varchar(50)" json:"role"`
	Strand    string    `gorm:"type:varchar(100)" json:"strand"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

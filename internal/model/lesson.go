// internal/model/lesson.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// コンテンツブロックの種別
const (
	BlockText  = "text"
	BlockList  = "list"
	BlockMedia = "media"
)

// ContentBlock はレッスン本文を構成する型付きブロックです
type ContentBlock struct {
	Kind     string   `json:"kind" validate:"required,oneof=text list media"`
	Text     string   `json:"text,omitempty"`
	Items    []string `json:"items,omitempty"`
	MediaURL string   `json:"media_url,omitempty"`
	Caption  string   `json:"caption,omitempty"`
}

// ContentBlocks は順序付きブロック列をJSONカラムとして保存するための型です
type ContentBlocks []ContentBlock

func (c ContentBlocks) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("ContentBlocks.Value: %w", err)
	}
	return string(b), nil
}

func (c *ContentBlocks) Scan(value interface{}) error {
	if value == nil {
		*c = ContentBlocks{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("ContentBlocks.Scan: unsupported type %T", value)
	}
	if len(data) == 0 {
		*c = ContentBlocks{}
		return nil
	}
	return json.Unmarshal(data, c)
}

// Lesson はモジュール配下の末端コンテンツ単位です。
// quarter_number / module_number は表示用の非正規化フィールドで、作成時に親から引き写します。
type Lesson struct {
	LessonID      string        `gorm:"primaryKey" json:"lesson_id"`
	Title         string        `gorm:"not null" json:"title"`
	Topic         string        `json:"topic,omitempty"`
	Contents      ContentBlocks `gorm:"type:jsonb" json:"contents"`
	ModuleID      string        `gorm:"not null;index" json:"module_id"`
	QuarterNumber int           `json:"quarter_number"`
	ModuleNumber  int           `json:"module_number"`
	Number        int           `gorm:"not null" json:"number"`
	Status        Status        `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedBy     Actor         `gorm:"embedded;embeddedPrefix:created_by_" json:"created_by"`
	ApprovedAt    *time.Time    `json:"approved_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// レッスン作成リクエストDTO
type PostLessonRequest struct {
	Title    string         `json:"title" validate:"required,min=1,max=200"`
	Topic    string         `json:"topic" validate:"omitempty,max=200"`
	ModuleID string         `json:"module_id" validate:"required"`
	Contents []ContentBlock `json:"contents" validate:"omitempty,dive"`
	Actor    *Actor         `json:"actor,omitempty" validate:"omitempty"`
}

// レッスン更新（部分）リクエストDTO。Contents はリスト全体の置き換えです。
type PatchLessonRequest struct {
	Title    *string         `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Topic    *string         `json:"topic,omitempty" validate:"omitempty,max=200"`
	Contents *[]ContentBlock `json:"contents,omitempty" validate:"omitempty,dive"`
}

// internal/model/sequence.go
package model

// Sequence は親スコープごとの採番カウンタです。
// 兄弟レコードを走査して max+1 を取る方式は並行作成時に重複を生むため、
// アトミックな upsert で加算するカウンタ行に置き換えています。
type Sequence struct {
	Scope string `gorm:"primaryKey" json:"scope"`
	Value int    `gorm:"not null" json:"value"`
}

func (Sequence) TableName() string {
	return "sequences"
}

// internal/model/actor.go
package model

// UnknownActorID は実行者を特定できなかった場合のセンチネル値です。
// 監査ログを常に表示可能にするため、null ではなくこの値を格納します。
const UnknownActorID = "unknown"

// Actor は状態変更リクエストの実行者スナップショットです
type Actor struct {
	ID     string `gorm:"column:id" json:"id" validate:"omitempty,max=100"`
	Name   string `gorm:"column:name" json:"name" validate:"omitempty,max=100"`
	Role   string `gorm:"column:role" json:"role" validate:"omitempty,max=50"`
	Strand string `gorm:"column:strand" json:"strand" validate:"omitempty,max=100"`
}

func (a Actor) IsZero() bool {
	return a.ID == "" && a.Name == "" && a.Role == "" && a.Strand == ""
}

// UnknownActor は全フィールドをセンチネルで埋めた Actor を返します
func UnknownActor() Actor {
	return Actor{ID: UnknownActorID, Name: UnknownActorID}
}

type ContextKey string

const (
	ActorKey ContextKey = "actor"
)

// internal/model/status.go
package model

// Status は承認ワークフロー上の状態を表します。
// pending → approved / rejected の一方向で、自動で戻ることはありません。
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// EntityKind は階層を構成するエンティティの種別です
type EntityKind string

const (
	KindQuarter EntityKind = "quarter"
	KindModule  EntityKind = "module"
	KindLesson  EntityKind = "lesson"
)

func (k EntityKind) Valid() bool {
	switch k {
	case KindQuarter, KindModule, KindLesson:
		return true
	}
	return false
}

// ReviewAction は監査ログに記録する操作種別です
type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
)

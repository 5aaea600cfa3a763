// internal/model/identifier.go
package model

import "fmt"

// 複合IDのフォーマット。既存データとの互換のためビット単位で一致させる必要があります。
//   Quarter: quarter_01
//   Module:  module_q1_01  (クォーター番号はそのまま、連番は2桁ゼロ埋め)
//   Lesson:  lesson_q1_m1_01

func FormatQuarterID(number int) string {
	return fmt.Sprintf("quarter_%02d", number)
}

func FormatModuleID(quarterNumber, sequence int) string {
	return fmt.Sprintf("module_q%d_%02d", quarterNumber, sequence)
}

func FormatLessonID(quarterNumber, moduleNumber, sequence int) string {
	return fmt.Sprintf("lesson_q%d_m%d_%02d", quarterNumber, moduleNumber, sequence)
}

// 連番カウンタのスコープキー。親エンティティごとに1カウンタを持ちます。
func ModuleSequenceScope(quarterID string) string {
	return "module:" + quarterID
}

func LessonSequenceScope(moduleID string) string {
	return "lesson:" + moduleID
}

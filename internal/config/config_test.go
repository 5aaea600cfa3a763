// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ApprovalRequired(t *testing.T) {
	tests := []struct {
		name  string
		gates []string
		kind  string
		want  bool
	}{
		{name: "設定された種別はゲートあり", gates: []string{"quarter"}, kind: "quarter", want: true},
		{name: "設定されていない種別はゲートなし", gates: []string{"quarter"}, kind: "module", want: false},
		{name: "大文字小文字は区別しない", gates: []string{"Quarter"}, kind: "quarter", want: true},
		{name: "複数種別の設定", gates: []string{"quarter", "module", "lesson"}, kind: "lesson", want: true},
		{name: "空設定では全種別ゲートなし", gates: nil, kind: "quarter", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.App.RequireApprovalFor = tt.gates
			assert.Equal(t, tt.want, cfg.ApprovalRequired(tt.kind))
		})
	}
}

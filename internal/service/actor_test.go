// internal/service/actor_test.go
package service

import (
	"testing"

	"curriculum_keep/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestResolveActor(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.Actor
		session *model.Actor
		profile *model.Actor
		want    model.Actor
	}{
		{
			name: "リクエストの値が最優先",
			req:  &model.Actor{ID: "req-id", Name: "req-name", Role: "editor", Strand: "math"},
			session: &model.Actor{
				ID: "session-id", Name: "session-name", Role: "viewer", Strand: "science",
			},
			want: model.Actor{ID: "req-id", Name: "req-name", Role: "editor", Strand: "math"},
		},
		{
			name:    "欠けたフィールドはセッションで補完される",
			req:     &model.Actor{ID: "req-id"},
			session: &model.Actor{ID: "session-id", Name: "session-name", Role: "viewer"},
			want:    model.Actor{ID: "req-id", Name: "session-name", Role: "viewer"},
		},
		{
			name:    "セッションでも欠けたフィールドはプロフィールで補完される",
			req:     &model.Actor{ID: "req-id"},
			session: &model.Actor{Name: "session-name"},
			profile: &model.Actor{ID: "profile-id", Name: "profile-name", Role: "admin", Strand: "ela"},
			want:    model.Actor{ID: "req-id", Name: "session-name", Role: "admin", Strand: "ela"},
		},
		{
			name:    "リクエストなしはセッションが使われる",
			req:     nil,
			session: &model.Actor{ID: "session-id", Name: "session-name"},
			want:    model.Actor{ID: "session-id", Name: "session-name"},
		},
		{
			name: "全ソースが空ならunknownセンチネル",
			want: model.UnknownActor(),
		},
		{
			name: "IDが決まらなければ名前があってもunknown",
			req:  &model.Actor{Name: "name-only"},
			want: model.UnknownActor(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveActor(tt.req, tt.session, tt.profile)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveActor_Deterministic(t *testing.T) {
	// 純粋関数なので同じ入力は常に同じ出力
	req := &model.Actor{ID: "a"}
	session := &model.Actor{Name: "b"}
	first := ResolveActor(req, session, nil)
	second := ResolveActor(req, session, nil)
	assert.Equal(t, first, second)
}

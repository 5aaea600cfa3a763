// internal/service/actor.go
package service

import (
	"context"

	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/model"
	"curriculum_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveActor はリクエストボディ・セッション・プロフィールの3ソースから
// 実行者スナップショットを決定する純粋関数です。
// フィールドごとにリクエスト → セッション → プロフィールの順で最初の非空値を採用し、
// IDが最後まで決まらなければ unknown センチネルを返します。
// 外部入出力を一切行わないため、優先順位のテーブルテストがそのまま書けます。
func ResolveActor(reqActor, sessionActor, profile *model.Actor) model.Actor {
	var resolved model.Actor
	for _, src := range []*model.Actor{reqActor, sessionActor, profile} {
		if src == nil {
			continue
		}
		if resolved.ID == "" {
			resolved.ID = src.ID
		}
		if resolved.Name == "" {
			resolved.Name = src.Name
		}
		if resolved.Role == "" {
			resolved.Role = src.Role
		}
		if resolved.Strand == "" {
			resolved.Strand = src.Strand
		}
	}
	if resolved.ID == "" {
		return model.UnknownActor()
	}
	return resolved
}

// ActorResolver はプロフィール参照 (副作用) と ResolveActor (純粋) をつなぐヘルパです
type ActorResolver struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewActorResolver(db *gorm.DB, userRepo repository.UserRepository) *ActorResolver {
	return &ActorResolver{db: db, userRepo: userRepo}
}

// Resolve はコンテキストのセッション実行者と任意のリクエスト実行者を合成します。
// IDが判明していて名前等が欠けている場合のみプロフィールを引きます。
// プロフィール参照の失敗は解決を妨げません (フォールバックが埋める)。
func (r *ActorResolver) Resolve(ctx context.Context, reqActor *model.Actor) model.Actor {
	sessionActor := middleware.GetActorFromContext(ctx)

	partial := ResolveActor(reqActor, sessionActor, nil)
	if partial.ID == "" || partial.ID == model.UnknownActorID {
		return partial
	}
	if partial.Name != "" && partial.Role != "" && partial.Strand != "" {
		return partial
	}

	profile := r.lookupProfile(ctx, partial.ID)
	return ResolveActor(reqActor, sessionActor, profile)
}

func (r *ActorResolver) lookupProfile(ctx context.Context, actorID string) *model.Actor {
	userID, err := uuid.Parse(actorID)
	if err != nil {
		// プロフィールはUUIDキーのみ。外部IDはそのまま使う。
		return nil
	}
	user, err := r.userRepo.FindByID(ctx, r.db, userID)
	if err != nil {
		return nil
	}
	return &model.Actor{
		ID:     user.UserID.String(),
		Name:   user.Name,
		Role:   user.Role,
		Strand: user.Strand,
	}
}

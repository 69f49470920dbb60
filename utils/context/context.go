package context

import (
	"context"

	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
)

func GetActor(ctx context.Context) (*model.Actor, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return nil, false
	}
	actor, ok := v.(*model.Actor)
	return actor, ok
}

func WithActor(ctx context.Context, actor *model.Actor) context.Context {
	return context.WithValue(ctx, constant.ActorKey, actor)
}

package services

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/vo"
	"golang.org/x/sync/errgroup"
)

// 互动历史回看深度。
const (
	contextLikeLimit = 100
	contextTipLimit  = 50
)

// UserContextBuilder 将观看者的点赞、关注、打赏折叠为创作者亲密度。
type UserContextBuilder struct {
	social     SocialGraphStore
	engagement EngagementStore
	log        *log.Helper
}

// NewUserContextBuilder 构造上下文生成器。
func NewUserContextBuilder(social SocialGraphStore, engagement EngagementStore, logger log.Logger) *UserContextBuilder {
	return &UserContextBuilder{
		social:     social,
		engagement: engagement,
		log:        log.NewHelper(logger),
	}
}

// Build 并发读取三类互动历史并折叠为 UserContext。
// 新账号没有任何互动时返回空集合与零亲密度，不视为错误。
func (b *UserContextBuilder) Build(ctx context.Context, viewerID uuid.UUID) (*vo.UserContext, error) {
	var (
		likes     []po.LikeRecord
		following []uuid.UUID
		tips      []po.TipRecord
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		records, err := b.engagement.GetRecentLikes(egCtx, viewerID, contextLikeLimit)
		if err != nil {
			return fmt.Errorf("get recent likes: %w", err)
		}
		likes = records
		return nil
	})
	eg.Go(func() error {
		ids, err := b.social.GetFollowing(egCtx, viewerID)
		if err != nil {
			return fmt.Errorf("get following: %w", err)
		}
		following = ids
		return nil
	})
	eg.Go(func() error {
		records, err := b.engagement.GetRecentTips(egCtx, viewerID, contextTipLimit)
		if err != nil {
			return fmt.Errorf("get recent tips: %w", err)
		}
		tips = records
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	userCtx := vo.NewUserContext()
	for _, like := range likes {
		userCtx.AddLike(like.ContentID, like.AuthorID)
	}
	for _, creatorID := range following {
		userCtx.AddFollow(creatorID)
	}
	for _, tip := range tips {
		userCtx.AddTip(tip.AuthorID, tip.Amount)
	}
	b.log.WithContext(ctx).Debugw("msg", "user context built",
		"viewer_id", viewerID, "likes", len(likes), "follows", len(following), "tips", len(tips))
	return userCtx, nil
}

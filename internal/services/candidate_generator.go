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

// recentLikesForSimilar 限定相似召回参考的最近点赞条数。
const recentLikesForSimilar = 10

// trendingWindowHours 限定热门召回的回看窗口。
const trendingWindowHours = 24

// CandidateGenerator 合并四条召回策略，产出去重后的候选集。
type CandidateGenerator struct {
	content    ContentStore
	social     SocialGraphStore
	engagement EngagementStore
	log        *log.Helper
}

// NewCandidateGenerator 构造候选生成器。
func NewCandidateGenerator(content ContentStore, social SocialGraphStore, engagement EngagementStore, logger log.Logger) *CandidateGenerator {
	return &CandidateGenerator{
		content:    content,
		social:     social,
		engagement: engagement,
		log:        log.NewHelper(logger),
	}
}

// Generate 返回最多覆盖四条召回策略的候选集合。
// Fresh、Trending、Followed 三路并发执行，任一失败则整体失败；
// Similar 仅在前三路合并后仍不足 targetCount 时追加执行。
// 观看者本人发布的内容一律丢弃，重复内容归属最先产出它的策略。
func (g *CandidateGenerator) Generate(ctx context.Context, viewerID uuid.UUID, targetCount int) ([]vo.Candidate, error) {
	perSource := targetCount / 3
	if perSource < 1 {
		perSource = 1
	}

	var fresh, trending, followed []po.ContentItem
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		items, err := g.content.ListRecent(egCtx, po.VisibilityPublic, perSource)
		if err != nil {
			return fmt.Errorf("list recent content: %w", err)
		}
		fresh = items
		return nil
	})
	eg.Go(func() error {
		items, err := g.content.ListTrending(egCtx, po.VisibilityPublic, trendingWindowHours, perSource)
		if err != nil {
			return fmt.Errorf("list trending content: %w", err)
		}
		trending = items
		return nil
	})
	eg.Go(func() error {
		items, err := g.listFollowed(egCtx, viewerID, perSource)
		if err != nil {
			return err
		}
		followed = items
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, perSource*4)
	candidates := make([]vo.Candidate, 0, perSource*4)
	merge := func(items []po.ContentItem, source vo.CandidateSource) {
		for _, item := range items {
			if item.AuthorID == viewerID {
				continue
			}
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			candidates = append(candidates, vo.Candidate{ContentItem: item, Source: source})
		}
	}
	merge(fresh, vo.SourceFresh)
	merge(trending, vo.SourceTrending)
	merge(followed, vo.SourceFollowed)

	if len(candidates) < targetCount {
		similar, err := g.listSimilar(ctx, viewerID, perSource)
		if err != nil {
			return nil, err
		}
		merge(similar, vo.SourceSimilar)
	}
	g.log.WithContext(ctx).Debugw("msg", "candidates generated",
		"viewer_id", viewerID, "target", targetCount, "merged", len(candidates))
	return candidates, nil
}

// listFollowed 召回关注作者的内容。关注列表为空时直接跳过查询。
func (g *CandidateGenerator) listFollowed(ctx context.Context, viewerID uuid.UUID, limit int) ([]po.ContentItem, error) {
	following, err := g.social.GetFollowing(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get following: %w", err)
	}
	if len(following) == 0 {
		return nil, nil
	}
	items, err := g.content.ListByAuthors(ctx, following, po.VisibilityPublic, limit)
	if err != nil {
		return nil, fmt.Errorf("list followed content: %w", err)
	}
	return items, nil
}

// listSimilar 基于最近点赞的作者召回相似内容，并剔除已点赞的条目。
// 点赞历史读取是本策略内部的串行前置步骤，与顶层 UserContext 无关。
func (g *CandidateGenerator) listSimilar(ctx context.Context, viewerID uuid.UUID, limit int) ([]po.ContentItem, error) {
	likes, err := g.engagement.GetRecentLikes(ctx, viewerID, recentLikesForSimilar)
	if err != nil {
		return nil, fmt.Errorf("get recent likes: %w", err)
	}
	if len(likes) == 0 {
		return nil, nil
	}
	authorSet := make(map[uuid.UUID]struct{}, len(likes))
	authors := make([]uuid.UUID, 0, len(likes))
	exclude := make([]uuid.UUID, 0, len(likes))
	for _, like := range likes {
		if _, ok := authorSet[like.AuthorID]; !ok {
			authorSet[like.AuthorID] = struct{}{}
			authors = append(authors, like.AuthorID)
		}
		exclude = append(exclude, like.ContentID)
	}
	items, err := g.content.ListByAuthorsExcluding(ctx, authors, exclude, po.VisibilityPublic, limit)
	if err != nil {
		return nil, fmt.Errorf("list similar content: %w", err)
	}
	return items, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/vo"
	"golang.org/x/sync/errgroup"
)

// 请求条数约束与候选超采样倍数。
const (
	defaultFeedLimit    = 20
	maxFeedLimit        = 100
	candidateOversample = 3
)

// FeedService 是个性化排序的主用例：召回、上下文、打分、排序串成一次无状态计算。
type FeedService struct {
	generator *CandidateGenerator
	builder   *UserContextBuilder
	engine    *RankingEngine
	content   ContentStore
	log       *log.Helper
}

// NewFeedService 构造 FeedService。
func NewFeedService(generator *CandidateGenerator, builder *UserContextBuilder, engine *RankingEngine, content ContentStore, logger log.Logger) *FeedService {
	return &FeedService{
		generator: generator,
		builder:   builder,
		engine:    engine,
		content:   content,
		log:       log.NewHelper(logger),
	}
}

// GetRecommendedFeed 返回按分数倒序的个性化排序结果，长度不超过 limit。
// 候选生成与上下文构建互不依赖，并发执行；任一底层查询失败则整个请求失败，
// 不降级为部分结果。
func (s *FeedService) GetRecommendedFeed(ctx context.Context, viewerID uuid.UUID, limit int) (*vo.RankedFeed, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	var (
		candidates []vo.Candidate
		userCtx    *vo.UserContext
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		result, err := s.generator.Generate(egCtx, viewerID, limit*candidateOversample)
		if err != nil {
			return err
		}
		candidates = result
		return nil
	})
	eg.Go(func() error {
		result, err := s.builder.Build(egCtx, viewerID)
		if err != nil {
			return err
		}
		userCtx = result
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	feed := &vo.RankedFeed{Entries: []vo.ScoredCandidate{}, GeneratedAt: now}
	if len(candidates) == 0 {
		return feed, nil
	}

	ids := make([]uuid.UUID, len(candidates))
	for i, candidate := range candidates {
		ids[i] = candidate.ID
	}
	stats, err := s.content.GetEngagementStats(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get engagement stats: %w", err)
	}
	if stats == nil {
		stats = map[uuid.UUID]po.EngagementStat{}
	}

	feed.Entries = s.engine.Rank(candidates, userCtx, stats, now, limit)
	s.log.WithContext(ctx).Debugw("msg", "feed ranked",
		"viewer_id", viewerID, "candidates", len(candidates), "returned", len(feed.Entries))
	return feed, nil
}

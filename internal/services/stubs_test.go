package services

import (
	"context"
	"io"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
)

var testLogger = log.NewStdLogger(io.Discard)

// stubContentStore 记录每次调用的参数，按字段返回预置结果。
// 加锁是因为召回与上下文构建会并发访问同一个 stub。
type stubContentStore struct {
	mu sync.Mutex

	recent    []po.ContentItem
	recentErr error

	trending    []po.ContentItem
	trendingErr error

	byAuthors    []po.ContentItem
	byAuthorsErr error

	excluding    []po.ContentItem
	excludingErr error

	stats    map[uuid.UUID]po.EngagementStat
	statsErr error

	recentLimit        int
	trendingLimit      int
	trendingSinceHours int
	byAuthorsLimit     int
	byAuthorsArgs      []uuid.UUID
	excludingAuthors   []uuid.UUID
	excludingIDs       []uuid.UUID
	statsIDs           []uuid.UUID
}

func (s *stubContentStore) ListRecent(_ context.Context, _ string, limit int) ([]po.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recentLimit = limit
	return s.recent, s.recentErr
}

func (s *stubContentStore) ListTrending(_ context.Context, _ string, sinceHours, limit int) ([]po.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trendingSinceHours = sinceHours
	s.trendingLimit = limit
	return s.trending, s.trendingErr
}

func (s *stubContentStore) ListByAuthors(_ context.Context, authorIDs []uuid.UUID, _ string, limit int) ([]po.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byAuthorsArgs = authorIDs
	s.byAuthorsLimit = limit
	return s.byAuthors, s.byAuthorsErr
}

func (s *stubContentStore) ListByAuthorsExcluding(_ context.Context, authorIDs, excludeIDs []uuid.UUID, _ string, _ int) ([]po.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.excludingAuthors = authorIDs
	s.excludingIDs = excludeIDs
	return s.excluding, s.excludingErr
}

func (s *stubContentStore) GetEngagementStats(_ context.Context, contentIDs []uuid.UUID) (map[uuid.UUID]po.EngagementStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statsIDs = contentIDs
	return s.stats, s.statsErr
}

type stubSocialGraphStore struct {
	following []uuid.UUID
	err       error
}

func (s *stubSocialGraphStore) GetFollowing(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return s.following, s.err
}

type stubEngagementStore struct {
	mu sync.Mutex

	likes    []po.LikeRecord
	likesErr error
	tips     []po.TipRecord
	tipsErr  error

	likeLimit int
	tipLimit  int
}

func (s *stubEngagementStore) GetRecentLikes(_ context.Context, _ uuid.UUID, limit int) ([]po.LikeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likeLimit = limit
	return s.likes, s.likesErr
}

func (s *stubEngagementStore) GetRecentTips(_ context.Context, _ uuid.UUID, limit int) ([]po.TipRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tipLimit = limit
	return s.tips, s.tipsErr
}

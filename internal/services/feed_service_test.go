package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
	"github.com/stretchr/testify/require"
)

func newFeedService(content *stubContentStore, social *stubSocialGraphStore, engagement *stubEngagementStore) *FeedService {
	generator := NewCandidateGenerator(content, social, engagement, testLogger)
	builder := NewUserContextBuilder(social, engagement, testLogger)
	engine, err := NewRankingEngine(NewSignalScorer(), DefaultWeights())
	if err != nil {
		panic(err)
	}
	return NewFeedService(generator, builder, engine, content, testLogger)
}

func TestFeedService_OversamplesCandidatesThenTruncates(t *testing.T) {
	items := make([]po.ContentItem, 0, 40)
	for i := 0; i < 40; i++ {
		items = append(items, newItem(uuid.New(), time.Duration(i)*time.Minute))
	}
	content := &stubContentStore{recent: items}
	service := newFeedService(content, &stubSocialGraphStore{}, &stubEngagementStore{})

	feed, err := service.GetRecommendedFeed(context.Background(), uuid.New(), 20)
	require.NoError(t, err)

	// limit 20 → 60 raw candidates requested, 20 per source.
	require.Equal(t, 20, content.recentLimit)
	require.Equal(t, 20, content.trendingLimit)
	require.Len(t, feed.Entries, 20)
	require.False(t, feed.GeneratedAt.IsZero())
	for i := 1; i < len(feed.Entries); i++ {
		require.GreaterOrEqual(t, feed.Entries[i-1].Score, feed.Entries[i].Score)
	}
}

func TestFeedService_AppliesDefaultLimit(t *testing.T) {
	content := &stubContentStore{}
	service := newFeedService(content, &stubSocialGraphStore{}, &stubEngagementStore{})

	feed, err := service.GetRecommendedFeed(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	require.Empty(t, feed.Entries)
	// default limit 20 → 60 raw candidates → 20 per source.
	require.Equal(t, 20, content.recentLimit)
}

func TestFeedService_FetchesStatsInOneBatch(t *testing.T) {
	items := []po.ContentItem{
		newItem(uuid.New(), time.Hour),
		newItem(uuid.New(), 2*time.Hour),
	}
	content := &stubContentStore{recent: items}
	service := newFeedService(content, &stubSocialGraphStore{}, &stubEngagementStore{})

	_, err := service.GetRecommendedFeed(context.Background(), uuid.New(), 30)
	require.NoError(t, err)
	require.Len(t, content.statsIDs, len(items))
}

func TestFeedService_SkipsStatsForEmptyCandidateSet(t *testing.T) {
	content := &stubContentStore{}
	service := newFeedService(content, &stubSocialGraphStore{}, &stubEngagementStore{})

	feed, err := service.GetRecommendedFeed(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	require.Empty(t, feed.Entries)
	require.Nil(t, content.statsIDs)
}

func TestFeedService_PropagatesStoreFailure(t *testing.T) {
	queryErr := errors.New("relation missing")
	content := &stubContentStore{
		recent:   []po.ContentItem{newItem(uuid.New(), time.Hour)},
		statsErr: queryErr,
	}
	service := newFeedService(content, &stubSocialGraphStore{}, &stubEngagementStore{})

	_, err := service.GetRecommendedFeed(context.Background(), uuid.New(), 10)
	require.ErrorIs(t, err, queryErr)
}

package vo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
	"github.com/stretchr/testify/require"
)

func TestTrendingVelocity(t *testing.T) {
	now := time.Now().UTC()
	item := po.ContentItem{
		LikeCount:    10,
		CommentCount: 5,
		TipTotal:     2,
		ViewCount:    100,
		CreatedAt:    now.Add(-2 * time.Hour),
	}

	// (10*2 + 5*3 + 2*10 + 100*0.1) / 2 = 65 / 2
	require.InDelta(t, 32.5, TrendingVelocity(item, now), 1e-9)
}

func TestTrendingVelocity_FreshItemFloorsHoursToOne(t *testing.T) {
	now := time.Now().UTC()
	item := po.ContentItem{
		LikeCount: 4,
		CreatedAt: now.Add(-5 * time.Minute),
	}

	// Five minutes old: the denominator floors to 1 instead of 0.083.
	require.InDelta(t, 8.0, TrendingVelocity(item, now), 1e-9)
}

func TestCandidateSource_String(t *testing.T) {
	require.Equal(t, "fresh", SourceFresh.String())
	require.Equal(t, "trending", SourceTrending.String())
	require.Equal(t, "followed", SourceFollowed.String())
	require.Equal(t, "similar", SourceSimilar.String())
	require.Equal(t, "unknown", CandidateSource(42).String())
}

func TestUserContext_AffinityAccumulation(t *testing.T) {
	creator := uuid.New()
	content := uuid.New()

	ctx := NewUserContext()
	ctx.AddLike(content, creator)
	ctx.AddFollow(creator)
	ctx.AddTip(creator, 3.5)

	// 1 (like) + 5 (follow) + 3.5*2 (tip) = 13
	require.InDelta(t, 13.0, ctx.Affinity(creator), 1e-9)
	require.True(t, ctx.HasLiked(content))
	require.True(t, ctx.IsFollowing(creator))
}

func TestUserContext_EmptyIsNeutral(t *testing.T) {
	ctx := NewUserContext()

	require.Zero(t, ctx.Affinity(uuid.New()))
	require.False(t, ctx.HasLiked(uuid.New()))
	require.False(t, ctx.IsFollowing(uuid.New()))
	require.NotNil(t, ctx.LikedItemIDs)
	require.NotNil(t, ctx.FollowedCreatorIDs)
	require.NotNil(t, ctx.CreatorAffinities)
}

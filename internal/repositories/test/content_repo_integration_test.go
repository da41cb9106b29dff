package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
	"github.com/stretchr/testify/require"
)

func TestContentRepository_ListRecent(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newContentRepo()
	author := uuid.New()

	newest := publicItem(author, 1*time.Hour)
	middle := publicItem(author, 5*time.Hour)
	oldest := publicItem(author, 9*time.Hour)
	private := publicItem(author, 30*time.Minute)
	private.Visibility = "followers"
	for _, item := range []po.ContentItem{oldest, newest, middle, private} {
		insertContent(t, item)
	}

	items, err := repo.ListRecent(ctx, po.VisibilityPublic, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, newest.ID, items[0].ID)
	require.Equal(t, middle.ID, items[1].ID)
}

func TestContentRepository_ListTrending_WindowAndVelocityOrder(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newContentRepo()
	author := uuid.New()

	// Older but heavily engaged: velocity (100*2)/2 = 100.
	hot := publicItem(author, 2*time.Hour)
	hot.LikeCount = 100
	// Newer but quiet: velocity 2/1 = 2.
	quiet := publicItem(author, 30*time.Minute)
	quiet.LikeCount = 1
	// Outside the 24h window regardless of engagement.
	stale := publicItem(author, 48*time.Hour)
	stale.LikeCount = 100000
	for _, item := range []po.ContentItem{quiet, hot, stale} {
		insertContent(t, item)
	}

	items, err := repo.ListTrending(ctx, po.VisibilityPublic, 24, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, hot.ID, items[0].ID)
	require.Equal(t, quiet.ID, items[1].ID)
}

func TestContentRepository_ListByAuthors(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newContentRepo()
	wanted := uuid.New()
	other := uuid.New()

	mine := publicItem(wanted, time.Hour)
	theirs := publicItem(other, time.Minute)
	insertContent(t, mine)
	insertContent(t, theirs)

	items, err := repo.ListByAuthors(ctx, []uuid.UUID{wanted}, po.VisibilityPublic, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, mine.ID, items[0].ID)

	// Empty author set short-circuits without querying.
	items, err = repo.ListByAuthors(ctx, nil, po.VisibilityPublic, 10)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestContentRepository_ListByAuthorsExcluding(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newContentRepo()
	author := uuid.New()

	kept := publicItem(author, 2*time.Hour)
	excluded := publicItem(author, time.Hour)
	insertContent(t, kept)
	insertContent(t, excluded)

	items, err := repo.ListByAuthorsExcluding(ctx, []uuid.UUID{author}, []uuid.UUID{excluded.ID}, po.VisibilityPublic, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, kept.ID, items[0].ID)
}

func TestContentRepository_GetEngagementStats(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newContentRepo()
	author := uuid.New()

	duration := int32(60)
	video := publicItem(author, time.Hour)
	video.MediaType = po.MediaTypeVideo
	video.DurationSeconds = &duration
	insertContent(t, video)
	insertStat(t, po.EngagementStat{
		ContentID:               video.ID,
		AvgCompletionPercentage: 80,
		AvgWatchTimeSeconds:     40,
		SampleViewCount:         120,
	})

	missing := uuid.New()
	stats, err := repo.GetEngagementStats(ctx, []uuid.UUID{video.ID, missing})
	require.NoError(t, err)
	require.Len(t, stats, 1)

	stat, ok := stats[video.ID]
	require.True(t, ok)
	require.InDelta(t, 80.0, stat.AvgCompletionPercentage, 1e-9)
	require.InDelta(t, 40.0, stat.AvgWatchTimeSeconds, 1e-9)
	require.EqualValues(t, 120, stat.SampleViewCount)

	_, found := stats[missing]
	require.False(t, found)
}

func TestContentRepository_RoundTripsNullableColumns(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newContentRepo()

	text := "hello feed"
	duration := int32(90)
	item := publicItem(uuid.New(), time.Hour)
	item.TextContent = &text
	item.MediaType = po.MediaTypeVideo
	item.DurationSeconds = &duration
	item.TipTotal = 12.5
	insertContent(t, item)

	items, err := repo.ListRecent(ctx, po.VisibilityPublic, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	got := items[0]
	require.NotNil(t, got.TextContent)
	require.Equal(t, text, *got.TextContent)
	require.NotNil(t, got.DurationSeconds)
	require.Equal(t, duration, *got.DurationSeconds)
	require.InDelta(t, 12.5, got.TipTotal, 1e-9)
	require.True(t, got.IsVideo())
}

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/vo"
)

// FeedServiceInterface 抽象排序用例，便于测试替换。
type FeedServiceInterface interface {
	GetRecommendedFeed(ctx context.Context, viewerID uuid.UUID, limit int) (*vo.RankedFeed, error)
}

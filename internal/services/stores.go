package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
)

// ContentStore 抽象内容读模型的查询能力，本引擎只读不写。
type ContentStore interface {
	// ListRecent 按发布时间倒序返回指定可见性的内容。
	ListRecent(ctx context.Context, visibility string, limit int) ([]po.ContentItem, error)
	// ListTrending 返回最近 sinceHours 小时内、按热度速率倒序的内容。
	ListTrending(ctx context.Context, visibility string, sinceHours int, limit int) ([]po.ContentItem, error)
	// ListByAuthors 按发布时间倒序返回指定作者集合的内容。
	ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, visibility string, limit int) ([]po.ContentItem, error)
	// ListByAuthorsExcluding 同 ListByAuthors，但剔除 excludeIDs 中的内容。
	ListByAuthorsExcluding(ctx context.Context, authorIDs []uuid.UUID, excludeIDs []uuid.UUID, visibility string, limit int) ([]po.ContentItem, error)
	// GetEngagementStats 批量返回观看质量聚合，缺失的内容不会出现在结果中。
	GetEngagementStats(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID]po.EngagementStat, error)
}

// SocialGraphStore 抽象关注关系查询。
type SocialGraphStore interface {
	GetFollowing(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error)
}

// EngagementStore 抽象观看者互动历史查询。
type EngagementStore interface {
	GetRecentLikes(ctx context.Context, viewerID uuid.UUID, limit int) ([]po.LikeRecord, error)
	GetRecentTips(ctx context.Context, viewerID uuid.UUID, limit int) ([]po.TipRecord, error)
}

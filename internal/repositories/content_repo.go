package repositories

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/vo"
	"github.com/jayblitz/SwipeMe-sub000/internal/repositories/mappers"
)

// trendingScanCap 限定热度排序前从窗口内拉取的最大行数。
const trendingScanCap = 500

const contentColumns = `id, author_id, text_content, media_type, like_count,
	comment_count, tip_total, view_count, duration_seconds, visibility, created_at`

// ContentRepository 基于 feed.content_items 读模型实现 services.ContentStore。
type ContentRepository struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewContentRepository 构造仓储实例。
func NewContentRepository(db *pgxpool.Pool, logger log.Logger) *ContentRepository {
	return &ContentRepository{db: db, log: log.NewHelper(logger)}
}

// ListRecent 按发布时间倒序返回内容。
func (r *ContentRepository) ListRecent(ctx context.Context, visibility string, limit int) ([]po.ContentItem, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM feed.content_items
		WHERE visibility = $1
		ORDER BY created_at DESC
		LIMIT $2`, contentColumns), visibility, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("list recent content: %w", err)
	}
	return collectContentItems(rows)
}

// ListTrending 拉取窗口内的内容并按热度速率倒序返回。
// 排序公式由 vo.TrendingVelocity 在内存中计算，存储层只做范围过滤。
func (r *ContentRepository) ListTrending(ctx context.Context, visibility string, sinceHours, limit int) ([]po.ContentItem, error) {
	if limit <= 0 {
		return nil, nil
	}
	now := time.Now().UTC()
	cutoff := now.Add(-time.Duration(sinceHours) * time.Hour)
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM feed.content_items
		WHERE visibility = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT $3`, contentColumns), visibility, cutoff, int32(trendingScanCap))
	if err != nil {
		return nil, fmt.Errorf("list trending content: %w", err)
	}
	items, err := collectContentItems(rows)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return vo.TrendingVelocity(items[i], now) > vo.TrendingVelocity(items[j], now)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// ListByAuthors 按发布时间倒序返回指定作者集合的内容。
func (r *ContentRepository) ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, visibility string, limit int) ([]po.ContentItem, error) {
	if len(authorIDs) == 0 || limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM feed.content_items
		WHERE visibility = $1 AND author_id = ANY($2)
		ORDER BY created_at DESC
		LIMIT $3`, contentColumns), visibility, authorIDs, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("list content by authors: %w", err)
	}
	return collectContentItems(rows)
}

// ListByAuthorsExcluding 同 ListByAuthors，但剔除指定内容。
func (r *ContentRepository) ListByAuthorsExcluding(ctx context.Context, authorIDs, excludeIDs []uuid.UUID, visibility string, limit int) ([]po.ContentItem, error) {
	if len(authorIDs) == 0 || limit <= 0 {
		return nil, nil
	}
	if excludeIDs == nil {
		excludeIDs = []uuid.UUID{}
	}
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM feed.content_items
		WHERE visibility = $1 AND author_id = ANY($2) AND NOT (id = ANY($3))
		ORDER BY created_at DESC
		LIMIT $4`, contentColumns), visibility, authorIDs, excludeIDs, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("list content by authors excluding: %w", err)
	}
	return collectContentItems(rows)
}

// GetEngagementStats 批量读取观看质量聚合，一次请求只发起一条查询。
func (r *ContentRepository) GetEngagementStats(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID]po.EngagementStat, error) {
	stats := make(map[uuid.UUID]po.EngagementStat, len(contentIDs))
	if len(contentIDs) == 0 {
		return stats, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT content_id, avg_completion_percentage, avg_watch_time_seconds, sample_view_count
		FROM feed.content_engagement_stats
		WHERE content_id = ANY($1)`, contentIDs)
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "get engagement stats failed", "count", len(contentIDs), "error", err)
		return nil, fmt.Errorf("get engagement stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var stat po.EngagementStat
		if err := rows.Scan(&stat.ContentID, &stat.AvgCompletionPercentage, &stat.AvgWatchTimeSeconds, &stat.SampleViewCount); err != nil {
			return nil, fmt.Errorf("scan engagement stat: %w", err)
		}
		stats[stat.ContentID] = stat
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate engagement stats: %w", err)
	}
	return stats, nil
}

func collectContentItems(rows pgx.Rows) ([]po.ContentItem, error) {
	defer rows.Close()
	var items []po.ContentItem
	for rows.Next() {
		var (
			item     po.ContentItem
			text     pgtype.Text
			duration pgtype.Int4
		)
		if err := rows.Scan(
			&item.ID, &item.AuthorID, &text, &item.MediaType, &item.LikeCount,
			&item.CommentCount, &item.TipTotal, &item.ViewCount, &duration,
			&item.Visibility, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		item.TextContent = mappers.TextPtr(text)
		item.DurationSeconds = mappers.Int4Ptr(duration)
		item.CreatedAt = item.CreatedAt.UTC()
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content items: %w", err)
	}
	return items, nil
}

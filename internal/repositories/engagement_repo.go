package repositories

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
)

// EngagementRepository 基于 feed.likes 与 feed.tips 实现 services.EngagementStore。
type EngagementRepository struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewEngagementRepository 构造仓储实例。
func NewEngagementRepository(db *pgxpool.Pool, logger log.Logger) *EngagementRepository {
	return &EngagementRepository{db: db, log: log.NewHelper(logger)}
}

// GetRecentLikes 返回观看者最近的点赞，附带目标内容的作者。
func (r *EngagementRepository) GetRecentLikes(ctx context.Context, viewerID uuid.UUID, limit int) ([]po.LikeRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT l.content_id, c.author_id, l.created_at
		FROM feed.likes l
		JOIN feed.content_items c ON c.id = l.content_id
		WHERE l.viewer_id = $1
		ORDER BY l.created_at DESC
		LIMIT $2`, viewerID, int32(limit))
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "get recent likes failed", "viewer_id", viewerID, "error", err)
		return nil, fmt.Errorf("get recent likes: %w", err)
	}
	defer rows.Close()
	var likes []po.LikeRecord
	for rows.Next() {
		var like po.LikeRecord
		if err := rows.Scan(&like.ContentID, &like.AuthorID, &like.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan like record: %w", err)
		}
		like.CreatedAt = like.CreatedAt.UTC()
		likes = append(likes, like)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}
	return likes, nil
}

// GetRecentTips 返回观看者最近的打赏金额与收款创作者。
func (r *EngagementRepository) GetRecentTips(ctx context.Context, viewerID uuid.UUID, limit int) ([]po.TipRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT recipient_id, amount, created_at
		FROM feed.tips
		WHERE viewer_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, viewerID, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("get recent tips: %w", err)
	}
	defer rows.Close()
	var tips []po.TipRecord
	for rows.Next() {
		var tip po.TipRecord
		if err := rows.Scan(&tip.AuthorID, &tip.Amount, &tip.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tip record: %w", err)
		}
		tip.CreatedAt = tip.CreatedAt.UTC()
		tips = append(tips, tip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tips: %w", err)
	}
	return tips, nil
}

package repositories

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SocialGraphRepository 基于 feed.follows 实现 services.SocialGraphStore。
type SocialGraphRepository struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewSocialGraphRepository 构造仓储实例。
func NewSocialGraphRepository(db *pgxpool.Pool, logger log.Logger) *SocialGraphRepository {
	return &SocialGraphRepository{db: db, log: log.NewHelper(logger)}
}

// GetFollowing 返回观看者关注的全部创作者。
func (r *SocialGraphRepository) GetFollowing(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT creator_id FROM feed.follows
		WHERE follower_id = $1
		ORDER BY created_at DESC`, viewerID)
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "get following failed", "viewer_id", viewerID, "error", err)
		return nil, fmt.Errorf("get following: %w", err)
	}
	defer rows.Close()
	var creators []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan creator id: %w", err)
		}
		creators = append(creators, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate follows: %w", err)
	}
	return creators, nil
}

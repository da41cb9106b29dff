// Package po 定义 Feed 排序引擎读取的数据快照结构体。
package po

import (
	"time"

	"github.com/google/uuid"
)

// 媒体类型取值。
const (
	MediaTypeText  = "text"
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// VisibilityPublic 表示对所有用户可见的内容。
const VisibilityPublic = "public"

// ContentItem 表示内容读模型在查询时刻的不可变快照。
type ContentItem struct {
	ID              uuid.UUID
	AuthorID        uuid.UUID
	TextContent     *string
	MediaType       string
	LikeCount       int64
	CommentCount    int64
	TipTotal        float64
	ViewCount       int64
	DurationSeconds *int32
	Visibility      string
	CreatedAt       time.Time
}

// IsVideo 判断内容是否为视频且带有有效时长。
func (c ContentItem) IsVideo() bool {
	return c.MediaType == MediaTypeVideo && c.DurationSeconds != nil && *c.DurationSeconds > 0
}

// EngagementStat 表示单条内容的观看质量聚合。
type EngagementStat struct {
	ContentID               uuid.UUID
	AvgCompletionPercentage float64
	AvgWatchTimeSeconds     float64
	SampleViewCount         int64
}

// LikeRecord 表示观看者的一次点赞及其作者归属。
type LikeRecord struct {
	ContentID uuid.UUID
	AuthorID  uuid.UUID
	CreatedAt time.Time
}

// TipRecord 表示观看者的一次打赏。
type TipRecord struct {
	AuthorID  uuid.UUID
	Amount    float64
	CreatedAt time.Time
}

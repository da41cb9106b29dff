package services

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/vo"
)

// 信号计算常量。
const (
	recencyHalfLifeHours  = 24.0
	engagementSaturation  = 100.0
	affinitySaturation    = 20.0
	followedAffinityFloor = 0.5
	watchQualityNeutral   = 0.5
	contentMatchBase      = 0.5
	bonusSourceFollowed   = 0.2
	bonusSourceSimilar    = 0.15
	bonusSourceTrending   = 0.1
)

// SignalScorer 为单条候选计算五路归一化信号。
// 所有方法都是候选与上下文的纯函数，无内部状态。
type SignalScorer struct{}

// NewSignalScorer 构造信号计算器。
func NewSignalScorer() *SignalScorer {
	return &SignalScorer{}
}

// Score 计算候选的完整信号明细，每项均已收敛到 [0,1]。
func (s *SignalScorer) Score(candidate vo.Candidate, userCtx *vo.UserContext, stats map[uuid.UUID]po.EngagementStat, now time.Time) vo.SignalBreakdown {
	var stat *po.EngagementStat
	if found, ok := stats[candidate.ID]; ok {
		stat = &found
	}
	return vo.SignalBreakdown{
		Recency:          s.Recency(candidate.CreatedAt, now),
		Engagement:       s.Engagement(candidate.ContentItem),
		CreatorAffinity:  s.CreatorAffinity(candidate.AuthorID, userCtx),
		ContentMatch:     s.ContentMatch(candidate, userCtx),
		WatchTimeQuality: s.WatchTimeQuality(candidate.ContentItem, stat),
	}
}

// Recency 按 24 小时半衰期做指数衰减：0h→1.0、24h→0.5、48h→0.25。
// 发布时间缺失时返回 0。
func (s *SignalScorer) Recency(createdAt, now time.Time) float64 {
	if createdAt.IsZero() {
		return 0
	}
	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	return clamp01(math.Pow(0.5, ageHours/recencyHalfLifeHours))
}

// Engagement 把互动总量线性映射到 [0,1]，100 分互动即饱和。
func (s *SignalScorer) Engagement(item po.ContentItem) float64 {
	raw := float64(item.LikeCount) + float64(item.CommentCount)*2 + item.TipTotal*10
	return clamp01(raw / engagementSaturation)
}

// CreatorAffinity 把原始亲密度按 20 饱和归一；
// 已关注的创作者在亲密度贡献之上保底抬升 0.5。
func (s *SignalScorer) CreatorAffinity(authorID uuid.UUID, userCtx *vo.UserContext) float64 {
	contribution := userCtx.Affinity(authorID) / affinitySaturation
	if userCtx.IsFollowing(authorID) {
		return clamp01(followedAffinityFloor + contribution)
	}
	return clamp01(contribution)
}

// ContentMatch 衡量候选与观看者兴趣的契合度。
// 已点赞过的内容强制归零，避免重复出现；其余从 0.5 起步叠加召回来源加成。
func (s *SignalScorer) ContentMatch(candidate vo.Candidate, userCtx *vo.UserContext) float64 {
	if userCtx.HasLiked(candidate.ID) {
		return 0
	}
	score := contentMatchBase
	switch candidate.Source {
	case vo.SourceFollowed:
		score += bonusSourceFollowed
	case vo.SourceSimilar:
		score += bonusSourceSimilar
	case vo.SourceTrending:
		score += bonusSourceTrending
	case vo.SourceFresh:
	}
	return clamp01(score)
}

// WatchTimeQuality 以观看质量聚合估计内容的消费完整度。
// 无聚合数据时返回 0.5 的中性先验，不惩罚也不奖励。
func (s *SignalScorer) WatchTimeQuality(item po.ContentItem, stat *po.EngagementStat) float64 {
	if stat == nil {
		return watchQualityNeutral
	}
	if item.IsVideo() {
		completionRate := stat.AvgCompletionPercentage / 100
		expectedWatch := float64(*item.DurationSeconds) * 0.5
		watchRatio := math.Min(1, stat.AvgWatchTimeSeconds/expectedWatch)
		return clamp01(watchQualityNeutral + completionRate*0.3 + watchRatio*0.2)
	}
	views := item.ViewCount
	if views < 1 {
		views = 1
	}
	sampleRatio := float64(stat.SampleViewCount) / float64(views)
	return clamp01(watchQualityNeutral + math.Min(0.3, sampleRatio*0.3))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

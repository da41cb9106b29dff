package vo

import (
	"time"

	"github.com/google/uuid"
)

// SignalBreakdown 记录五路归一化信号，每项取值均在 [0,1]。
type SignalBreakdown struct {
	Recency          float64 `json:"recency"`
	Engagement       float64 `json:"engagement"`
	CreatorAffinity  float64 `json:"creator_affinity"`
	ContentMatch     float64 `json:"content_match"`
	WatchTimeQuality float64 `json:"watch_time_quality"`
}

// ScoredCandidate 表示排序后的一条结果及其信号明细。
type ScoredCandidate struct {
	ContentID uuid.UUID       `json:"content_id"`
	Source    string          `json:"source"`
	Score     float64         `json:"score"`
	Signals   SignalBreakdown `json:"signals"`
}

// RankedFeed 汇总一次排序请求的产出，按分数从高到低排列。
type RankedFeed struct {
	Entries     []ScoredCandidate `json:"entries"`
	GeneratedAt time.Time         `json:"generated_at"`
}

package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/vo"
)

// Weights 定义五路信号的线性组合权重，总和必须为 1。
type Weights struct {
	Recency          float64
	Engagement       float64
	CreatorAffinity  float64
	ContentMatch     float64
	WatchTimeQuality float64
}

// DefaultWeights 返回建模观看时长的权重配置。
func DefaultWeights() Weights {
	return Weights{
		Recency:          0.20,
		Engagement:       0.25,
		CreatorAffinity:  0.20,
		ContentMatch:     0.15,
		WatchTimeQuality: 0.20,
	}
}

// Validate 校验权重总和为 1，允许 1e-9 的浮点误差。
func (w Weights) Validate() error {
	sum := w.Recency + w.Engagement + w.CreatorAffinity + w.ContentMatch + w.WatchTimeQuality
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("signal weights sum to %v, want 1.0", sum)
	}
	return nil
}

// Combine 计算信号明细的加权总分。
func (w Weights) Combine(signals vo.SignalBreakdown) float64 {
	return signals.Recency*w.Recency +
		signals.Engagement*w.Engagement +
		signals.CreatorAffinity*w.CreatorAffinity +
		signals.ContentMatch*w.ContentMatch +
		signals.WatchTimeQuality*w.WatchTimeQuality
}

// RankingEngine 对候选集打分、排序并截断。
type RankingEngine struct {
	scorer  *SignalScorer
	weights Weights
}

// NewRankingEngine 构造排序引擎，权重不合法时返回错误。
func NewRankingEngine(scorer *SignalScorer, weights Weights) (*RankingEngine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &RankingEngine{scorer: scorer, weights: weights}, nil
}

// Rank 对候选集合打分并按总分倒序返回前 limit 条。
// 总分相同时按时效信号倒序、再按内容 id 字典序升序，保证排序可复现。
func (e *RankingEngine) Rank(candidates []vo.Candidate, userCtx *vo.UserContext, stats map[uuid.UUID]po.EngagementStat, now time.Time, limit int) []vo.ScoredCandidate {
	scored := make([]vo.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		signals := e.scorer.Score(candidate, userCtx, stats, now)
		scored = append(scored, vo.ScoredCandidate{
			ContentID: candidate.ID,
			Source:    candidate.Source.String(),
			Score:     e.weights.Combine(signals),
			Signals:   signals,
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Signals.Recency != scored[j].Signals.Recency {
			return scored[i].Signals.Recency > scored[j].Signals.Recency
		}
		return strings.Compare(scored[i].ContentID.String(), scored[j].ContentID.String()) < 0
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Package vo 定义排序流程中的视图对象与纯计算工具。
package vo

import (
	"time"

	"github.com/jayblitz/SwipeMe-sub000/internal/models/po"
)

// CandidateSource 标识候选内容由哪条召回策略产出。
type CandidateSource int

// 召回策略枚举。合并去重时按 Fresh → Trending → Followed → Similar 的顺序归属。
const (
	SourceFresh CandidateSource = iota
	SourceTrending
	SourceFollowed
	SourceSimilar
)

// String 返回召回策略的稳定标识。
func (s CandidateSource) String() string {
	switch s {
	case SourceFresh:
		return "fresh"
	case SourceTrending:
		return "trending"
	case SourceFollowed:
		return "followed"
	case SourceSimilar:
		return "similar"
	default:
		return "unknown"
	}
}

// Candidate 表示一条待排序的候选内容，随请求创建，不做持久化。
type Candidate struct {
	po.ContentItem

	Source CandidateSource
}

// TrendingVelocity 计算内容的热度速率：总互动量按发布后小时数归一。
// 小时数向下保护为 1，避免刚发布内容除零。
func TrendingVelocity(item po.ContentItem, now time.Time) float64 {
	hours := now.Sub(item.CreatedAt).Hours()
	if hours < 1 {
		hours = 1
	}
	raw := float64(item.LikeCount)*2 +
		float64(item.CommentCount)*3 +
		item.TipTotal*10 +
		float64(item.ViewCount)*0.1
	return raw / hours
}

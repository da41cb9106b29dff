// Package services 实现 Feed 排序引擎的业务用例：候选召回、上下文折叠、
// 信号打分与加权排序。所有组件经依赖注入构造，不持有跨请求状态。
package services

import "github.com/google/wire"

// ProviderSet 汇总业务层构造函数供 Wire 装配。
var ProviderSet = wire.NewSet(
	NewCandidateGenerator,
	NewUserContextBuilder,
	NewSignalScorer,
	DefaultWeights,
	NewRankingEngine,
	NewFeedService,
)

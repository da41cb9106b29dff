// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
// 该层负责参数校验、DTO 转换和错误映射。
package controllers

import (
	"github.com/google/wire"
	"github.com/jayblitz/SwipeMe-sub000/internal/services"
)

// ProvideHandlerTimeouts 返回默认超时档位。
func ProvideHandlerTimeouts() HandlerTimeouts { return HandlerTimeouts{} }

// ProvideFeedServiceAPI 将 FeedService 适配为 Handler 依赖的接口。
func ProvideFeedServiceAPI(s *services.FeedService) FeedServiceAPI { return s }

// ProviderSet 汇总传输层构造函数供 Wire 装配。
var ProviderSet = wire.NewSet(
	ProvideHandlerTimeouts,
	NewBaseHandler,
	ProvideFeedServiceAPI,
	NewFeedHandler,
)

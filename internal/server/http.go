// Package server 装配对外监听的传输层实例。
package server

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
	"github.com/jayblitz/SwipeMe-sub000/internal/conf"
	"github.com/jayblitz/SwipeMe-sub000/internal/controllers"
)

// NewHTTPServer 构造 HTTP Server 并注册全部路由。
func NewHTTPServer(c *conf.Server, feed *controllers.FeedHandler, logger log.Logger) *khttp.Server {
	opts := []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	if c.HTTP.Addr != "" {
		opts = append(opts, khttp.Address(c.HTTP.Addr))
	}
	if c.HTTP.Timeout != "" {
		if timeout, err := time.ParseDuration(c.HTTP.Timeout); err == nil {
			opts = append(opts, khttp.Timeout(timeout))
		}
	}
	srv := khttp.NewServer(opts...)
	feed.RegisterRoutes(srv)
	return srv
}

// ProviderSet 汇总传输实例构造函数供 Wire 装配。
var ProviderSet = wire.NewSet(NewHTTPServer)

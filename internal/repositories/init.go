// Package repositories 提供三类外部读模型的 Postgres 实现。
// 本层只发起只读查询，事务与写路径均不在排序引擎职责内。
package repositories

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jayblitz/SwipeMe-sub000/internal/conf"
	"github.com/jayblitz/SwipeMe-sub000/internal/services"
)

// NewPgxPool 构造连接池并返回退出时的清理函数。
func NewPgxPool(c *conf.Data, logger log.Logger) (*pgxpool.Pool, func(), error) {
	helper := log.NewHelper(logger)
	cfg, err := pgxpool.ParseConfig(c.Database.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database dsn: %w", err)
	}
	if c.Database.MaxConns > 0 {
		cfg.MaxConns = c.Database.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create database pool: %w", err)
	}
	cleanup := func() {
		helper.Info("closing database pool")
		pool.Close()
	}
	return pool, cleanup, nil
}

// ProviderSet 汇总仓储构造函数并绑定到业务层接口。
var ProviderSet = wire.NewSet(
	NewPgxPool,
	NewContentRepository,
	NewSocialGraphRepository,
	NewEngagementRepository,
	wire.Bind(new(services.ContentStore), new(*ContentRepository)),
	wire.Bind(new(services.SocialGraphStore), new(*SocialGraphRepository)),
	wire.Bind(new(services.EngagementStore), new(*EngagementRepository)),
)

//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/jayblitz/SwipeMe-sub000/internal/conf"
	"github.com/jayblitz/SwipeMe-sub000/internal/controllers"
	"github.com/jayblitz/SwipeMe-sub000/internal/repositories"
	"github.com/jayblitz/SwipeMe-sub000/internal/server"
	"github.com/jayblitz/SwipeMe-sub000/internal/services"
)

// wireApp 组装全部依赖并返回可运行的应用实例。
func wireApp(*conf.Server, *conf.Data, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		repositories.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		server.ProviderSet,
		newApp,
	))
}

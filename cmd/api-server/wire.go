//go:build wireinject
// +build wireinject

package main

import (
	"Mindshare/config"
	"Mindshare/dao"
	"Mindshare/handler"
	"Mindshare/pkg/client"
	"Mindshare/pkg/database"
	"Mindshare/pkg/server"
	"Mindshare/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Resource), "*"),
		wire.Struct(new(handler.Tag), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Rating), "*"),
		wire.Struct(new(handler.Bookmark), "*"),
		wire.Struct(new(handler.MindMap), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}

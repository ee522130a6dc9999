package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(TagService), "*"),
	wire.Bind(new(ITagService), new(*TagService)),

	wire.Struct(new(ResourceService), "*"),
	wire.Bind(new(IResourceService), new(*ResourceService)),

	wire.Struct(new(RatingService), "*"),
	wire.Bind(new(IRatingService), new(*RatingService)),

	wire.Struct(new(BookmarkService), "*"),
	wire.Bind(new(IBookmarkService), new(*BookmarkService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(MindMapService), "*"),
	wire.Bind(new(IMindMapService), new(*MindMapService)),
)

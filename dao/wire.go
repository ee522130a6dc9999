package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewProfile,
	NewTag,
	NewResourceTag,
	NewResource,
	NewResourceFile,
	NewComment,
	NewRating,
	NewBookmark,
	NewMindMap,
	NewMindMapNode,
)

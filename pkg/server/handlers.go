package server

import (
	"Mindshare/handler"
)

type Handlers struct {
	User     *handler.User
	Resource *handler.Resource
	Tag      *handler.Tag
	Comment  *handler.Comment
	Rating   *handler.Rating
	Bookmark *handler.Bookmark
	MindMap  *handler.MindMap
}

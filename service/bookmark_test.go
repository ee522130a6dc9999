package service

import (
	"context"
	"testing"
)

func TestBookmarkUnique(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	id := env.createResource(t, alice, "Saved")

	if err := env.bookmarks.Bookmark(ctx, bob, id); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}
	if err := env.bookmarks.Bookmark(ctx, bob, id); err == nil {
		t.Fatal("重复收藏应被拒绝")
	}

	// 别的用户不受影响
	if err := env.bookmarks.Bookmark(ctx, alice, id); err != nil {
		t.Fatalf("另一个用户收藏失败: %v", err)
	}
}

func TestUnbookmark(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	id := env.createResource(t, alice, "Unsaved")

	if err := env.bookmarks.Unbookmark(ctx, bob, id); err == nil {
		t.Fatal("没收藏过就取消应报错")
	}

	if err := env.bookmarks.Bookmark(ctx, bob, id); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}
	if err := env.bookmarks.Unbookmark(ctx, bob, id); err != nil {
		t.Fatalf("取消收藏失败: %v", err)
	}

	bookmarked, err := env.bookmarks.IsBookmarked(ctx, bob, id)
	if err != nil {
		t.Fatalf("查询收藏状态失败: %v", err)
	}
	if bookmarked {
		t.Error("取消后仍显示已收藏")
	}
}

func TestListBookmarksEmbedsResource(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	first := env.createResource(t, alice, "First Saved")
	second := env.createResource(t, alice, "Second Saved")

	if err := env.bookmarks.Bookmark(ctx, bob, first); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}
	if err := env.bookmarks.Bookmark(ctx, bob, second); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}

	list, err := env.bookmarks.ListForUser(ctx, bob, 20, 0)
	if err != nil {
		t.Fatalf("收藏列表失败: %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("total = %d, want 2", list.Total)
	}
	for _, item := range list.Bookmarks {
		if item.Resource == nil {
			t.Fatal("收藏项应内嵌完整资源投影")
		}
		if item.Resource.CreatedBy != "alice" {
			t.Errorf("内嵌资源 created_by = %q, want alice", item.Resource.CreatedBy)
		}
	}
}

func TestBookmarkMissingResource(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bob := env.createUser(t, "bob")

	if err := env.bookmarks.Bookmark(ctx, bob, 999999); err == nil {
		t.Fatal("收藏不存在的资源应报错")
	}
}

package service

import (
	"Mindshare/types"
	"context"
	"testing"
)

func (e *testEnv) createMindMap(t *testing.T, userID uint64, title string) uint64 {
	t.Helper()
	m, err := e.mindmaps.CreateMindMap(context.Background(), userID, &types.CreateMindMapRequest{Title: title})
	if err != nil {
		t.Fatalf("创建导图失败: %v", err)
	}
	return m.ID
}

func (e *testEnv) createNode(t *testing.T, userID, mapID, parentID uint64, title string) uint64 {
	t.Helper()
	node, err := e.mindmaps.CreateNode(context.Background(), userID, &types.CreateNodeRequest{
		MindMapID: mapID, ParentID: parentID, Title: title,
	})
	if err != nil {
		t.Fatalf("创建节点失败: %v", err)
	}
	return node.ID
}

func TestMindMapOwnerOnlyMutation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	mapID := env.createMindMap(t, alice, "Alice's Map")

	title := "hijacked"
	if _, err := env.mindmaps.UpdateMindMap(ctx, bob, mapID, &types.UpdateMindMapRequest{Title: &title}); err == nil {
		t.Fatal("非属主更新应被拒绝")
	}
	if err := env.mindmaps.DeleteMindMap(ctx, bob, mapID); err == nil {
		t.Fatal("非属主删除应被拒绝")
	}
	if _, err := env.mindmaps.CreateNode(ctx, bob, &types.CreateNodeRequest{MindMapID: mapID, Title: "n"}); err == nil {
		t.Fatal("非属主建节点应被拒绝")
	}
}

func TestMindMapPrivateVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	private := env.createMindMap(t, alice, "Private Map")
	public, err := env.mindmaps.CreateMindMap(ctx, alice, &types.CreateMindMapRequest{Title: "Public Map", IsPublic: true})
	if err != nil {
		t.Fatalf("创建导图失败: %v", err)
	}

	if _, err := env.mindmaps.GetMindMap(ctx, bob, private); err == nil {
		t.Fatal("私有导图对非属主应不可见")
	}
	if _, err := env.mindmaps.GetMindMap(ctx, alice, private); err != nil {
		t.Fatalf("属主查看私有导图失败: %v", err)
	}
	if _, err := env.mindmaps.GetMindMap(ctx, bob, public.ID); err != nil {
		t.Fatalf("公开导图应所有人可见: %v", err)
	}
	// 未登录 uid = 0
	if _, err := env.mindmaps.GetMindMap(ctx, 0, public.ID); err != nil {
		t.Fatalf("公开导图应未登录可见: %v", err)
	}
}

func TestCreateNodeValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	mapA := env.createMindMap(t, alice, "Map A")
	mapB := env.createMindMap(t, alice, "Map B")

	rootA := env.createNode(t, alice, mapA, 0, "root")

	// 父节点在别的导图
	if _, err := env.mindmaps.CreateNode(ctx, alice, &types.CreateNodeRequest{
		MindMapID: mapB, ParentID: rootA, Title: "cross",
	}); err == nil {
		t.Fatal("跨导图的父节点应被拒绝")
	}

	// 关联的资源必须存在
	if _, err := env.mindmaps.CreateNode(ctx, alice, &types.CreateNodeRequest{
		MindMapID: mapA, Title: "linked", ResourceID: 999999,
	}); err == nil {
		t.Fatal("不存在的资源关联应被拒绝")
	}
}

func TestUpdateNodeReparentValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	mapID := env.createMindMap(t, alice, "Tree")

	root := env.createNode(t, alice, mapID, 0, "root")
	child := env.createNode(t, alice, mapID, root, "child")
	grandchild := env.createNode(t, alice, mapID, child, "grandchild")

	// 自己当父节点
	if _, err := env.mindmaps.UpdateNode(ctx, alice, child, &types.UpdateNodeRequest{ParentID: &child}); err == nil {
		t.Fatal("父节点是自己应被拒绝")
	}
	// 挂到自己的后代下面成环
	if _, err := env.mindmaps.UpdateNode(ctx, alice, child, &types.UpdateNodeRequest{ParentID: &grandchild}); err == nil {
		t.Fatal("挂到后代下面应被拒绝")
	}
	// 同级合法移动
	sibling := env.createNode(t, alice, mapID, root, "sibling")
	if _, err := env.mindmaps.UpdateNode(ctx, alice, grandchild, &types.UpdateNodeRequest{ParentID: &sibling}); err != nil {
		t.Fatalf("合法换父失败: %v", err)
	}
	// 提为根节点
	var zero uint64
	updated, err := env.mindmaps.UpdateNode(ctx, alice, child, &types.UpdateNodeRequest{ParentID: &zero})
	if err != nil {
		t.Fatalf("提为根节点失败: %v", err)
	}
	if updated.ParentID != 0 {
		t.Errorf("parent_id = %d, want 0", updated.ParentID)
	}
}

func TestDeleteNodeCascadesSubtree(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	mapID := env.createMindMap(t, alice, "Cascade")

	root := env.createNode(t, alice, mapID, 0, "root")
	keep := env.createNode(t, alice, mapID, root, "keep")
	doomed := env.createNode(t, alice, mapID, root, "doomed")
	doomedChild := env.createNode(t, alice, mapID, doomed, "doomed-child")
	env.createNode(t, alice, mapID, doomedChild, "doomed-grandchild")

	if err := env.mindmaps.DeleteNode(ctx, alice, doomed); err != nil {
		t.Fatalf("删除节点失败: %v", err)
	}

	detail, err := env.mindmaps.GetMindMap(ctx, alice, mapID)
	if err != nil {
		t.Fatalf("查导图失败: %v", err)
	}
	if len(detail.Nodes) != 2 {
		t.Fatalf("剩余节点数 = %d, want 2", len(detail.Nodes))
	}
	for _, node := range detail.Nodes {
		if node.ID != root && node.ID != keep {
			t.Errorf("不该存活的节点: %d", node.ID)
		}
	}
}

func TestDeleteNodeSurvivesDirtyCycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	mapID := env.createMindMap(t, alice, "Dirty")

	a := env.createNode(t, alice, mapID, 0, "a")
	b := env.createNode(t, alice, mapID, a, "b")
	// 绕过服务校验直接把 a 挂到 b 下面，制造脏数据环
	if err := env.db.Table("mindmap_nodes").Where("id = ?", a).Update("parent_id", b).Error; err != nil {
		t.Fatalf("构造脏数据失败: %v", err)
	}

	if err := env.mindmaps.DeleteNode(ctx, alice, a); err != nil {
		t.Fatalf("删除成环节点失败: %v", err)
	}

	var count int64
	if err := env.db.Table("mindmap_nodes").Where("mindmap_id = ?", mapID).Count(&count).Error; err != nil {
		t.Fatalf("查节点失败: %v", err)
	}
	if count != 0 {
		t.Fatalf("环上的节点应全部删除, 残留 %d", count)
	}
}

func TestDeleteMindMapCascadesNodes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	mapID := env.createMindMap(t, alice, "Doomed Map")

	root := env.createNode(t, alice, mapID, 0, "root")
	env.createNode(t, alice, mapID, root, "child")

	if err := env.mindmaps.DeleteMindMap(ctx, alice, mapID); err != nil {
		t.Fatalf("删除导图失败: %v", err)
	}

	var count int64
	if err := env.db.Table("mindmap_nodes").Where("mindmap_id = ?", mapID).Count(&count).Error; err != nil {
		t.Fatalf("查节点失败: %v", err)
	}
	if count != 0 {
		t.Fatalf("导图删除后残留 %d 个节点", count)
	}
}

func TestResourceDeleteClearsNodeLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	resID := env.createResource(t, alice, "Linked Resource")
	mapID := env.createMindMap(t, alice, "Linking Map")

	node, err := env.mindmaps.CreateNode(ctx, alice, &types.CreateNodeRequest{
		MindMapID: mapID, Title: "linked", ResourceID: resID,
	})
	if err != nil {
		t.Fatalf("创建节点失败: %v", err)
	}

	if err := env.resources.DeleteResource(ctx, alice, resID); err != nil {
		t.Fatalf("删除资源失败: %v", err)
	}

	detail, err := env.mindmaps.GetMindMap(ctx, alice, mapID)
	if err != nil {
		t.Fatalf("查导图失败: %v", err)
	}
	if len(detail.Nodes) != 1 {
		t.Fatalf("节点应保留, got %d", len(detail.Nodes))
	}
	if detail.Nodes[0].ID != node.ID || detail.Nodes[0].ResourceID != 0 {
		t.Errorf("节点资源链接应置空: %+v", detail.Nodes[0])
	}
}

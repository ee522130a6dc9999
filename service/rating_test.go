package service

import (
	"Mindshare/types"
	"context"
	"testing"
)

func TestRateRecomputesAggregates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")
	id := env.createResource(t, alice, "Rated Resource")

	if _, err := env.ratings.Rate(ctx, bob, id, &types.RateRequest{Score: 4}); err != nil {
		t.Fatalf("评分失败: %v", err)
	}
	if _, err := env.ratings.Rate(ctx, carol, id, &types.RateRequest{Score: 2}); err != nil {
		t.Fatalf("评分失败: %v", err)
	}

	resource, err := env.resources.ResourceDAO.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("查资源失败: %v", err)
	}
	if resource.AvgRating != 3.0 {
		t.Errorf("avg_rating = %v, want 3.0", resource.AvgRating)
	}
	if resource.RatingCount != 2 {
		t.Errorf("rating_count = %d, want 2", resource.RatingCount)
	}
}

func TestRateRoundsHalfUp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	id := env.createResource(t, alice, "Rounding")

	// 4 + 3 + 3 = 10 / 3 = 3.333... → 3.33
	for i, score := range []int{4, 3, 3} {
		uid := env.createUser(t, "rater"+string(rune('a'+i)))
		if _, err := env.ratings.Rate(ctx, uid, id, &types.RateRequest{Score: score}); err != nil {
			t.Fatalf("评分失败: %v", err)
		}
	}

	resp, err := env.resources.GetResource(ctx, id)
	if err != nil {
		t.Fatalf("查资源失败: %v", err)
	}
	if resp.AvgRating != "3.33" {
		t.Errorf("avg_rating = %q, want 3.33", resp.AvgRating)
	}
}

func TestRateScoreBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	id := env.createResource(t, alice, "Bounds")

	for _, score := range []int{0, 6, -1} {
		if _, err := env.ratings.Rate(ctx, alice, id, &types.RateRequest{Score: score}); err == nil {
			t.Errorf("score = %d 应被拒绝", score)
		}
	}
	// 边界值合法
	for _, score := range []int{1, 5} {
		if _, err := env.ratings.Rate(ctx, alice, id, &types.RateRequest{Score: score}); err != nil {
			t.Errorf("score = %d 应被接受: %v", score, err)
		}
	}
}

func TestRateUpsertsSameUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	id := env.createResource(t, alice, "Upsert")

	if _, err := env.ratings.Rate(ctx, bob, id, &types.RateRequest{Score: 2}); err != nil {
		t.Fatalf("评分失败: %v", err)
	}
	if _, err := env.ratings.Rate(ctx, bob, id, &types.RateRequest{Score: 5}); err != nil {
		t.Fatalf("改分失败: %v", err)
	}

	resource, err := env.resources.ResourceDAO.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("查资源失败: %v", err)
	}
	if resource.RatingCount != 1 {
		t.Errorf("rating_count = %d, want 1", resource.RatingCount)
	}
	if resource.AvgRating != 5.0 {
		t.Errorf("avg_rating = %v, want 5.0", resource.AvgRating)
	}
}

func TestCreateRatingRejectsDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	id := env.createResource(t, alice, "Strict")

	if _, err := env.ratings.CreateRating(ctx, bob, id, 4); err != nil {
		t.Fatalf("评分失败: %v", err)
	}
	if _, err := env.ratings.CreateRating(ctx, bob, id, 3); err == nil {
		t.Fatal("同一用户重复评分应被拒绝")
	}

	resource, err := env.resources.ResourceDAO.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("查资源失败: %v", err)
	}
	if resource.RatingCount != 1 || resource.AvgRating != 4.0 {
		t.Errorf("统计 = %v / %d, want 4.0 / 1", resource.AvgRating, resource.RatingCount)
	}
}

func TestRemoveRatingZeroesAggregates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	id := env.createResource(t, alice, "Remove")

	if _, err := env.ratings.Rate(ctx, bob, id, &types.RateRequest{Score: 5}); err != nil {
		t.Fatalf("评分失败: %v", err)
	}
	if err := env.ratings.RemoveRating(ctx, bob, id); err != nil {
		t.Fatalf("删除评分失败: %v", err)
	}

	resource, err := env.resources.ResourceDAO.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("查资源失败: %v", err)
	}
	if resource.AvgRating != 0 || resource.RatingCount != 0 {
		t.Errorf("删光评分后统计 = %v / %d, want 0 / 0", resource.AvgRating, resource.RatingCount)
	}

	// 没评过分再删报错
	if err := env.ratings.RemoveRating(ctx, bob, id); err == nil {
		t.Fatal("重复删除应报错")
	}
}

func TestRateMissingResource(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	if _, err := env.ratings.Rate(ctx, alice, 999999, &types.RateRequest{Score: 3}); err == nil {
		t.Fatal("给不存在的资源评分应报错")
	}
}

package service

import (
	"context"
	"strings"
	"testing"
)

func TestNormalizeTagName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"python", "python"},
		{"  python  ", "python"},
		{"#python", "python"},
		{" #python ", "python"},
		{"machine   learning", "machine learning"},
		{"Python", "Python"}, // 大小写保留
		{"#", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := normalizeTagName(c.in); got != c.want {
			t.Errorf("normalizeTagName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResolveTagsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.tags.ResolveTags(ctx, []string{"go", "database"})
	if err != nil {
		t.Fatalf("解析标签失败: %v", err)
	}
	second, err := env.tags.ResolveTags(ctx, []string{"go", "database"})
	if err != nil {
		t.Fatalf("解析标签失败: %v", err)
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("标签 %q 两次解析拿到不同 ID: %d vs %d", first[i].Name, first[i].ID, second[i].ID)
		}
	}

	var count int64
	if err := env.db.Table("tags").Count(&count).Error; err != nil {
		t.Fatalf("查 tags 失败: %v", err)
	}
	if count != 2 {
		t.Fatalf("tags 行数 = %d, want 2", count)
	}
}

func TestResolveTagsDedupAndOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// "python" 去重，"#Python " 规范化后是 "Python"，大小写区分算另一个标签
	tags, err := env.tags.ResolveTags(ctx, []string{"python", "python", " #Python "})
	if err != nil {
		t.Fatalf("解析标签失败: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("标签数 = %d, want 2", len(tags))
	}
	if tags[0].Name != "python" || tags[1].Name != "Python" {
		t.Fatalf("标签顺序不对: %q, %q", tags[0].Name, tags[1].Name)
	}
	// 同一批里派生出相同 slug 基串，后来者追加后缀
	if tags[0].Slug != "python" || tags[1].Slug != "python-1" {
		t.Fatalf("slug = %q, %q, want python, python-1", tags[0].Slug, tags[1].Slug)
	}

	var count int64
	if err := env.db.Table("tags").Count(&count).Error; err != nil {
		t.Fatalf("查 tags 失败: %v", err)
	}
	if count != 2 {
		t.Fatalf("tags 行数 = %d, want 2", count)
	}
}

func TestResolveTagsSlugCollisionAcrossCalls(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 第一次落库占掉基串，第二次调用里的同形名字要拿到后缀 slug
	first, err := env.tags.ResolveTags(ctx, []string{"Data Science"})
	if err != nil {
		t.Fatalf("解析标签失败: %v", err)
	}
	second, err := env.tags.ResolveTags(ctx, []string{"data science", "DATA SCIENCE"})
	if err != nil {
		t.Fatalf("解析标签失败: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("标签数 = %d, want 2", len(second))
	}
	seen := map[string]bool{first[0].Slug: true}
	for _, tag := range second {
		if seen[tag.Slug] {
			t.Fatalf("slug 重复: %q", tag.Slug)
		}
		seen[tag.Slug] = true
	}
}

func TestResolveTagsRejectsTooLong(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.tags.ResolveTags(ctx, []string{strings.Repeat("x", 65)}); err == nil {
		t.Fatal("超长标签名应被拒绝")
	}
}

func TestResolveTagsSkipsEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tags, err := env.tags.ResolveTags(ctx, []string{"", "  ", "#", "real"})
	if err != nil {
		t.Fatalf("解析标签失败: %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "real" {
		t.Fatalf("空白标签应被跳过: %+v", tags)
	}
}
